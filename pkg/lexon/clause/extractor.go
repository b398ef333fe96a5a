// Package clause splits raw legal-document text into discrete clauses and
// assigns each to a fixed taxonomy of legal categories using deterministic
// pattern matching. The extractor is a pure, stateless transform: identical
// input always yields identical output, and a single instance is safe for
// concurrent use on different inputs.
package clause

import "regexp"

// Clause is one extracted legal provision. Content is a contiguous span
// of the source text running from this clause's heading to the next
// detected heading (trimmed of surrounding whitespace). Type,
// SectionNumber and PageReference are empty when not detected.
type Clause struct {
	Name          string
	Content       string
	Type          string
	SectionNumber string
	PageReference string
}

// Extractor holds the compiled boundary catalog and type taxonomy.
// Construct once with NewExtractor and reuse across documents.
type Extractor struct {
	catalog   []boundaryPattern
	taxonomy  []clauseType
	sectionRe *regexp.Regexp
	pageRe    *regexp.Regexp
}

// NewExtractor compiles the fixed pattern catalog and taxonomy.
func NewExtractor() (*Extractor, error) {
	catalog, err := compileCatalog()
	if err != nil {
		return nil, err
	}
	taxonomy, err := compileTaxonomy()
	if err != nil {
		return nil, err
	}
	sectionRe, err := regexp.Compile(`\d+(?:\.\d+)*`)
	if err != nil {
		return nil, err
	}
	pageRe, err := regexp.Compile(`---\s*Page\s+(\d+)\s*---`)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		catalog:   catalog,
		taxonomy:  taxonomy,
		sectionRe: sectionRe,
		pageRe:    pageRe,
	}, nil
}

// Clauses splits text into clauses in source order, each classified and
// enriched with section number and page reference. Text with no
// heading-like substrings yields zero clauses, never an error; any
// internal failure invalidates the whole call.
func (e *Extractor) Clauses(text string) ([]Clause, error) {
	segments := e.split(text)
	clauses := make([]Clause, 0, len(segments))
	for _, s := range segments {
		clauses = append(clauses, e.Enrich(Clause{Name: s.title, Content: s.content}))
	}
	return clauses, nil
}

// Enrich fills Type, SectionNumber and PageReference on a clause whose
// Name and Content were produced elsewhere (e.g. by an LLM extraction
// path).
func (e *Extractor) Enrich(c Clause) Clause {
	c.Type = e.classify(c.Name, c.Content)
	c.SectionNumber = e.sectionNumber(c.Name)
	c.PageReference = e.pageReference(c.Content)
	return c
}

// GroupByType buckets clauses by their type name, using Unclassified for
// clauses with no type. Buckets are created on first membership and keep
// the clauses' relative source order.
func (e *Extractor) GroupByType(clauses []Clause) map[string][]Clause {
	grouped := make(map[string][]Clause)
	for _, c := range clauses {
		name := c.Type
		if name == "" {
			name = Unclassified
		}
		grouped[name] = append(grouped[name], c)
	}
	return grouped
}

// ExtractByType returns clause contents keyed by type name. When types is
// empty every taxonomy type is included, plus the Unclassified bucket if
// non-empty; otherwise the result holds exactly the requested keys.
// Requested types with no clauses map to an explicit empty list.
func (e *Extractor) ExtractByType(text string, types []string) (map[string][]string, error) {
	clauses, err := e.Clauses(text)
	if err != nil {
		return nil, err
	}
	grouped := e.GroupByType(clauses)

	target := types
	all := len(target) == 0
	if all {
		target = TypeNames()
	}

	result := make(map[string][]string, len(target)+1)
	for _, name := range target {
		contents := []string{}
		for _, c := range grouped[name] {
			contents = append(contents, c.Content)
		}
		result[name] = contents
	}

	if all {
		if unclassified := grouped[Unclassified]; len(unclassified) > 0 {
			contents := make([]string, 0, len(unclassified))
			for _, c := range unclassified {
				contents = append(contents, c.Content)
			}
			result[Unclassified] = contents
		}
	}
	return result, nil
}
