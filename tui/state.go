package tui

type state int

const (
	previewState state = iota
	errorState
)
