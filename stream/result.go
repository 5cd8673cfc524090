package stream

import "strings"

// Result is the rendered display pair for a candidate.
type Result struct {
	// Name is the compact list-item title.
	Name string `json:"name"`
	// Description is the multi-line subtext.
	Description string `json:"description"`
}

// Title returns the name folded onto a single line, for list views that cannot
// display multi-line titles.
func (r Result) Title() string {
	return strings.Join(strings.Fields(r.Name), " ")
}

// String returns the name and description separated by a line break.
func (r Result) String() string {
	if r.Description == "" {
		return r.Name
	}
	return r.Name + "\n" + r.Description
}
