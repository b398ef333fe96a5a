package clause

import (
	"fmt"
	"regexp"
)

// boundaryPattern describes one way a clause heading can appear in a
// legal document. Patterns are evaluated independently and their matches
// merged, so catalog order only matters for tie-breaking between matches
// that start at the same offset.
type boundaryPattern struct {
	id         string
	re         *regexp.Regexp
	titleGroup int // subexpression index of the "title" capture, -1 when absent
}

// catalogSources is the fixed boundary-detection catalog. Declaration
// order is the tie-break priority for matches at equal offsets.
var catalogSources = []struct {
	id  string
	src string
}{
	// Section/Article/Clause with numbers (e.g. "Section 1.1", "Article 5")
	{"keyword-numbered", `(?i)(?P<title>(?:Section|Article|Clause|Schedule|Paragraph|Part|Chapter)\s+\d+(?:\.\d+)*[^\n]*)`},

	// Numbered headings (e.g. "1.", "2.1", "3.2.1 Payment")
	{"numbered", `(?i)(?P<title>\d+(?:\.\d+)*\.?\s+[A-Z][^\n]*)`},

	// Lettered sections (e.g. "(a)", "(i)", "A.")
	{"lettered", `(?i)(?P<title>\([a-z]+\)|[A-Z]\.)\s+[^\n]*`},

	// Common legal headings without numbers
	{"keyword", `(?i)(?P<title>(?:WHEREAS|NOW THEREFORE|DEFINITIONS|TERMS AND CONDITIONS|PAYMENT|TERMINATION|LIABILITY|CONFIDENTIALITY|INTELLECTUAL PROPERTY|GOVERNING LAW|DISPUTE RESOLUTION|FORCE MAJEURE|AMENDMENTS|WARRANTIES|REPRESENTATIONS)[^\n]*)`},
}

// compileCatalog builds the boundary pattern catalog from its sources
func compileCatalog() ([]boundaryPattern, error) {
	catalog := make([]boundaryPattern, 0, len(catalogSources))
	for _, s := range catalogSources {
		re, err := regexp.Compile(s.src)
		if err != nil {
			return nil, fmt.Errorf("compile boundary pattern %s: %w", s.id, err)
		}
		catalog = append(catalog, boundaryPattern{
			id:         s.id,
			re:         re,
			titleGroup: re.SubexpIndex("title"),
		})
	}
	return catalog, nil
}
