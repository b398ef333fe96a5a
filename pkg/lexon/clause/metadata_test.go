package clause

import "testing"

func TestSectionNumber(t *testing.T) {
	e := newTestExtractor(t)

	cases := []struct {
		title string
		want  string
	}{
		{"Section 3.2 Confidentiality", "3.2"},
		{"Article 5", "5"},
		{"2.1.4 Late Fees", "2.1.4"},
		{"WHEREAS the parties agree", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := e.sectionNumber(c.title); got != c.want {
			t.Errorf("sectionNumber(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestPageReference(t *testing.T) {
	e := newTestExtractor(t)

	content := "Section 4 Liability\n--- Page 7 ---\nthe supplier shall not be liable"
	if got := e.pageReference(content); got != "7" {
		t.Errorf("pageReference = %q, want %q", got, "7")
	}

	if got := e.pageReference("no marker in this clause"); got != "" {
		t.Errorf("pageReference = %q, want empty", got)
	}

	// First marker wins when the span crosses more than one page.
	multi := "text\n--- Page 2 ---\nmore text\n--- Page 3 ---\nend"
	if got := e.pageReference(multi); got != "2" {
		t.Errorf("pageReference = %q, want %q", got, "2")
	}
}
