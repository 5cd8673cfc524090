package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samber/mo"
	"github.com/streamfmt/streamfmt/render"
	"github.com/streamfmt/streamfmt/stream"
	"github.com/streamfmt/streamfmt/util"
)

type CandidatePicker func([]*stream.Candidate) *stream.Candidate

type Options struct {
	In           io.Reader
	Out          io.Writer
	Renderer     *render.Renderer
	Minimalistic bool
	Json         bool
	// Wrap is the text output width; zero disables wrapping.
	Wrap   int
	Picker mo.Option[CandidatePicker]
}

// ParsePicker parses "first", "last" or a zero-based index.
// Indexes past the end select the last candidate.
func ParsePicker(description string) (CandidatePicker, error) {
	switch description {
	case "first":
		return func(candidates []*stream.Candidate) *stream.Candidate {
			if len(candidates) == 0 {
				return nil
			}
			return candidates[0]
		}, nil
	case "last":
		return func(candidates []*stream.Candidate) *stream.Candidate {
			if len(candidates) == 0 {
				return nil
			}
			return candidates[len(candidates)-1]
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid picker: %s", description)
	}

	return func(candidates []*stream.Candidate) *stream.Candidate {
		if len(candidates) == 0 {
			return nil
		}
		return candidates[util.Min(idx, uint64(len(candidates)-1))]
	}, nil
}
