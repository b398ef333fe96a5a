package clause

import (
	"strings"
	"testing"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewExtractor()
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return e
}

func TestSplitNoHeadings(t *testing.T) {
	e := newTestExtractor(t)

	text := "plain prose with nothing resembling a heading anywhere in it"
	segments := e.split(text)

	if len(segments) != 0 {
		t.Errorf("Expected no segments, got %d", len(segments))
	}
}

func TestSplitEmptyInput(t *testing.T) {
	e := newTestExtractor(t)

	if segments := e.split(""); len(segments) != 0 {
		t.Errorf("Empty input should yield no segments, got %d", len(segments))
	}
}

func TestSplitOrderedSpans(t *testing.T) {
	e := newTestExtractor(t)

	text := "1. DEFINITIONS\nthe term Service shall refer to the software\n\n" +
		"2. PAYMENT TERMS\nall invoices are due within thirty days\n\n" +
		"3. TERMINATION\neither party may end this agreement on notice"

	segments := e.split(text)
	if len(segments) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(segments))
	}

	titles := []string{"1. DEFINITIONS", "2. PAYMENT TERMS", "3. TERMINATION"}
	for i, want := range titles {
		if segments[i].title != want {
			t.Errorf("Segment %d title = %q, want %q", i, segments[i].title, want)
		}
	}

	// Each span runs from its heading to the next heading's start.
	if !strings.HasPrefix(segments[0].content, "1. DEFINITIONS") {
		t.Errorf("Segment content should start at its boundary match: %q", segments[0].content)
	}
	if strings.Contains(segments[0].content, "PAYMENT") {
		t.Errorf("Segment 0 content leaked into the next clause: %q", segments[0].content)
	}
	if !strings.Contains(segments[2].content, "end this agreement") {
		t.Errorf("Last segment should run to end of input: %q", segments[2].content)
	}
}

func TestSplitOverlappingMatchesDropped(t *testing.T) {
	e := newTestExtractor(t)

	// "Section 2 PAYMENT TERMS" is hit by three catalog patterns at
	// offsets 0, 8 and 10; only the earliest survives the overlap filter.
	text := "Section 2 PAYMENT TERMS\nfees are due on receipt of invoice"

	segments := e.split(text)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment after overlap filtering, got %d", len(segments))
	}
	if segments[0].title != "Section 2 PAYMENT TERMS" {
		t.Errorf("Kept title = %q, want the first-declared pattern's match", segments[0].title)
	}
}

func TestSplitKeepsMatchesOutsideTolerance(t *testing.T) {
	e := newTestExtractor(t)

	text := "DEFINITIONS\nwords defined within this agreement\n\n" +
		"TERMINATION\nwhen this agreement may end"

	segments := e.split(text)
	if len(segments) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segments))
	}
}

func TestSplitTrailingHeading(t *testing.T) {
	e := newTestExtractor(t)

	// The only heading-like text sits in the final characters of the
	// document; its clause content is exactly that trailing substring.
	text := "plain prose with nothing resembling a heading\nWHEREAS"

	segments := e.split(text)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].content != "WHEREAS" {
		t.Errorf("Trailing clause content = %q, want %q", segments[0].content, "WHEREAS")
	}
}

func TestSplitContentTrimmed(t *testing.T) {
	e := newTestExtractor(t)

	text := "DEFINITIONS\nterms defined herein\n\n\n"
	segments := e.split(text)
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if strings.HasSuffix(segments[0].content, "\n") {
		t.Errorf("Content should be trimmed: %q", segments[0].content)
	}
}
