package clause

import (
	"fmt"
	"regexp"
)

// Unclassified is the bucket name for clauses that match no taxonomy type.
const Unclassified = "Unclassified"

// clauseType pairs a type name with the patterns that detect it.
type clauseType struct {
	name     string
	patterns []*regexp.Regexp
}

// taxonomySources is the fixed clause-type taxonomy. List order is the
// classification priority: the first type with any matching pattern wins,
// so a clause matching an earlier generic type and a later specific type
// is always labeled with the earlier one.
var taxonomySources = []struct {
	name     string
	patterns []string
}{
	{"Terms and Conditions", []string{
		`terms?\s+and\s+conditions?`,
		`general\s+terms?`,
		`conditions?\s+of\s+use`,
		`agreement\s+terms?`,
	}},
	{"Payment Terms", []string{
		`payment\s+terms?`,
		`payment\s+obligations?`,
		`fees?\s+and\s+charges?`,
		`billing`,
		`invoice`,
		`compensation`,
	}},
	{"Termination Clause", []string{
		`termination`,
		`expir(?:ation|y)`,
		`end\s+of\s+agreement`,
		`dissolution`,
	}},
	{"Liability Clause", []string{
		`liability`,
		`damages?`,
		`limitation\s+of\s+liability`,
		`indemnif(?:ication|y)`,
		`harm`,
		`loss`,
	}},
	{"Confidentiality Clause", []string{
		`confidential(?:ity)?`,
		`non-?disclosure`,
		`proprietary\s+information`,
		`trade\s+secrets?`,
		`privacy`,
	}},
	{"Intellectual Property", []string{
		`intellectual\s+property`,
		`copyright`,
		`trademark`,
		`patent`,
		`proprietary\s+rights?`,
		`ownership`,
	}},
	{"Governing Law", []string{
		`governing\s+law`,
		`applicable\s+law`,
		`jurisdiction`,
		`venue`,
		`choice\s+of\s+law`,
	}},
	{"Dispute Resolution", []string{
		`dispute\s+resolution`,
		`arbitration`,
		`mediation`,
		`litigation`,
		`legal\s+proceedings?`,
	}},
	{"Force Majeure", []string{
		`force\s+majeure`,
		`act\s+of\s+god`,
		`unforeseeable\s+circumstances?`,
		`beyond\s+(?:reasonable\s+)?control`,
	}},
	{"Amendments", []string{
		`amendment`,
		`modification`,
		`changes?\s+to\s+agreement`,
		`variation`,
	}},
	{"Definitions", []string{
		`definitions?`,
		`interpretation`,
		`meaning`,
		`shall\s+mean`,
	}},
	{"Representations and Warranties", []string{
		`representations?\s+and\s+warrant(?:ies|y)`,
		`representations?`,
		`warrant(?:ies|y)`,
		`guarantees?`,
		`assurances?`,
	}},
}

// TypeNames returns the recognized clause-type names in classification
// priority order.
func TypeNames() []string {
	names := make([]string, len(taxonomySources))
	for i, t := range taxonomySources {
		names[i] = t.name
	}
	return names
}

// compileTaxonomy builds the ordered classification taxonomy
func compileTaxonomy() ([]clauseType, error) {
	taxonomy := make([]clauseType, 0, len(taxonomySources))
	for _, s := range taxonomySources {
		ct := clauseType{name: s.name, patterns: make([]*regexp.Regexp, 0, len(s.patterns))}
		for _, src := range s.patterns {
			re, err := regexp.Compile(src)
			if err != nil {
				return nil, fmt.Errorf("compile %q pattern: %w", s.name, err)
			}
			ct.patterns = append(ct.patterns, re)
		}
		taxonomy = append(taxonomy, ct)
	}
	return taxonomy, nil
}
