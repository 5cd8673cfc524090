package tui

import (
	"strings"

	"github.com/streamfmt/streamfmt/stream"
)

// listItem implements list.Item for one rendered candidate.
type listItem struct {
	result stream.Result
}

// Title is the name folded onto one line.
func (t *listItem) Title() string {
	return t.result.Title()
}

func (t *listItem) Description() string {
	return t.result.Description
}

func (t *listItem) FilterValue() string {
	return t.result.Title()
}

// lines returns the number of description lines.
func (t *listItem) lines() int {
	if t.result.Description == "" {
		return 0
	}
	return strings.Count(t.result.Description, "\n") + 1
}
