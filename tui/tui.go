// Package tui provides the interactive preview of rendered candidates.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/streamfmt/streamfmt/render"
	"github.com/streamfmt/streamfmt/stream"
)

// Options encapsulates the runtime configuration for the preview.
type Options struct {
	Candidates   []*stream.Candidate
	Renderer     *render.Renderer
	Minimalistic bool
}

// Run starts the preview and blocks until the user quits.
func Run(options *Options) error {
	bubble := newBubble(options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
