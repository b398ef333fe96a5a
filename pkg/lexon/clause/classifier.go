package clause

import (
	"strings"
	"unicode/utf8"
)

// probeLimit caps how much clause content feeds classification; headings
// and opening language decide the type, not the whole body.
const probeLimit = 500

// classify assigns a taxonomy type to a clause from its title and the
// opening of its content. First match in taxonomy order wins; empty
// string means no type matched.
func (e *Extractor) classify(title, content string) string {
	probe := strings.ToLower(title + " " + probeHead(content))

	for _, ct := range e.taxonomy {
		for _, re := range ct.patterns {
			if re.MatchString(probe) {
				return ct.name
			}
		}
	}
	return ""
}

// probeHead truncates content to the probe window, backing off to a rune
// boundary so the probe is always valid UTF-8.
func probeHead(content string) string {
	if len(content) <= probeLimit {
		return content
	}
	cut := probeLimit
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut]
}
