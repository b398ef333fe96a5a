package clause

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClassifyByTitle(t *testing.T) {
	e := newTestExtractor(t)

	got := e.classify("5. CONFIDENTIALITY", "each party shall keep the other's information secret")
	if got != "Confidentiality Clause" {
		t.Errorf("classify = %q, want %q", got, "Confidentiality Clause")
	}
}

func TestClassifyByContent(t *testing.T) {
	e := newTestExtractor(t)

	got := e.classify("Article 9", "this contract is subject to arbitration before any court filing")
	if got != "Dispute Resolution" {
		t.Errorf("classify = %q, want %q", got, "Dispute Resolution")
	}
}

func TestClassifyFirstTypeWins(t *testing.T) {
	e := newTestExtractor(t)

	// Matches both Liability Clause and the later Representations and
	// Warranties; taxonomy order decides.
	got := e.classify("Article 7", "limitation of liability and warranty disclaimers")
	if got != "Liability Clause" {
		t.Errorf("classify = %q, want earlier taxonomy type %q", got, "Liability Clause")
	}

	got = e.classify("Article 1", "terms and conditions of payment")
	if got != "Terms and Conditions" {
		t.Errorf("classify = %q, want earlier taxonomy type %q", got, "Terms and Conditions")
	}
}

func TestClassifyNoMatch(t *testing.T) {
	e := newTestExtractor(t)

	if got := e.classify("Exhibit A", "schedules attached hereto"); got != "" {
		t.Errorf("classify = %q, want no type", got)
	}
}

func TestClassifyProbeLimit(t *testing.T) {
	e := newTestExtractor(t)

	// Matching text past the probe window must not influence the result.
	content := strings.Repeat("x ", probeLimit/2+10) + "confidentiality"
	if got := e.classify("Exhibit B", content); got != "" {
		t.Errorf("classify = %q, content beyond probe window should be ignored", got)
	}
}

func TestProbeHeadRuneBoundary(t *testing.T) {
	// A two-byte rune straddling the window must be dropped whole, not
	// split into an invalid byte.
	content := strings.Repeat("a", probeLimit-1) + "é" + strings.Repeat("b", 40)
	head := probeHead(content)
	if !utf8.ValidString(head) {
		t.Fatalf("probeHead returned invalid UTF-8: %q", head[len(head)-4:])
	}
	if len(head) != probeLimit-1 {
		t.Errorf("probeHead length = %d, want %d", len(head), probeLimit-1)
	}

	if head := probeHead("short"); head != "short" {
		t.Errorf("probeHead(short) = %q", head)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	e := newTestExtractor(t)

	if got := e.classify("FORCE MAJEURE", ""); got != "Force Majeure" {
		t.Errorf("classify = %q, want %q", got, "Force Majeure")
	}
}

func TestTypeNamesOrder(t *testing.T) {
	names := TypeNames()
	if len(names) != 12 {
		t.Fatalf("Expected 12 taxonomy types, got %d", len(names))
	}
	if names[0] != "Terms and Conditions" {
		t.Errorf("First type = %q, want %q", names[0], "Terms and Conditions")
	}
	if names[11] != "Representations and Warranties" {
		t.Errorf("Last type = %q, want %q", names[11], "Representations and Warranties")
	}
}
