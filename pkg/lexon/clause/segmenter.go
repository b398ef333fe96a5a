package clause

import (
	"sort"
	"strings"
)

// overlapTolerance is the historical slack, in characters, allowed between
// the end of one kept boundary match and the start of the next. A later
// match starting inside this window is dropped as a duplicate of the same
// heading. The filter is approximate on purpose.
const overlapTolerance = 10

// boundaryMatch is a candidate clause start located by one catalog
// pattern. It only exists during segmentation.
type boundaryMatch struct {
	start int
	end   int
	title string
}

// segment is the raw (title, content) span of one clause prior to
// classification and metadata enrichment.
type segment struct {
	title   string
	content string
}

// split locates clause boundaries with every catalog pattern, merges and
// orders the matches, drops near-duplicates, and cuts the text into spans
// running from each kept boundary to the next (or end of input).
func (e *Extractor) split(text string) []segment {
	var matches []boundaryMatch
	for _, p := range e.catalog {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			m := boundaryMatch{start: loc[0], end: loc[1]}
			if p.titleGroup > 0 && loc[2*p.titleGroup] >= 0 {
				m.title = text[loc[2*p.titleGroup]:loc[2*p.titleGroup+1]]
			} else {
				m.title = text[loc[0]:loc[1]]
			}
			m.title = strings.TrimSpace(m.title)
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return nil
	}

	// Matches were appended in catalog order, so the stable sort keeps
	// the first-declared pattern ahead on equal start offsets.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	kept := make([]boundaryMatch, 0, len(matches))
	kept = append(kept, matches[0])
	for _, m := range matches[1:] {
		last := kept[len(kept)-1]
		if m.start >= last.end-overlapTolerance {
			kept = append(kept, m)
		}
	}

	segments := make([]segment, 0, len(kept))
	for i, m := range kept {
		end := len(text)
		if i+1 < len(kept) {
			end = kept[i+1].start
		}
		segments = append(segments, segment{
			title:   m.title,
			content: strings.TrimSpace(text[m.start:end]),
		})
	}
	return segments
}
