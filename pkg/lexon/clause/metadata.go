package clause

// sectionNumber pulls the first dotted numeric run out of a clause title
// (e.g. "3.2" from "Section 3.2 Confidentiality"). Empty when the title
// carries no number.
func (e *Extractor) sectionNumber(title string) string {
	return e.sectionRe.FindString(title)
}

// pageReference returns the page number from the first upstream page
// marker ("--- Page N ---") inside the clause content, or empty when the
// content spans no marker.
func (e *Extractor) pageReference(content string) string {
	m := e.pageRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}
