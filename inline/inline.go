// Package inline renders batches of candidates without user interaction.
package inline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/streamfmt/streamfmt/log"
	"github.com/streamfmt/streamfmt/render"
	"github.com/streamfmt/streamfmt/stream"
	"github.com/streamfmt/streamfmt/util"
)

func Run(options *Options) error {
	if options.In == nil {
		options.In = os.Stdin
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Renderer == nil {
		options.Renderer = render.New()
	}

	candidates, err := Decode(options.In)
	if err != nil {
		return err
	}
	log.Infof("decoded %s", util.Quantify(len(candidates), "candidate", "candidates"))

	if options.Picker.IsPresent() {
		picker := options.Picker.MustGet()
		if choice := picker(candidates); choice != nil {
			candidates = []*stream.Candidate{choice}
		} else {
			candidates = nil
		}
	}

	results := options.Renderer.RenderAll(candidates, options.Minimalistic)
	log.WithFields(log.Fields{
		"results":      len(results),
		"minimalistic": options.Minimalistic,
	}).Info("rendered batch")

	if options.Json {
		return writeJson(options.Out, results, options.Minimalistic)
	}

	return writeText(options.Out, results, options.Wrap)
}

func writeJson(out io.Writer, results []stream.Result, minimalistic bool) error {
	data, err := asJson(results, minimalistic)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// writeText prints each result as its name and description, separated by a blank line.
func writeText(out io.Writer, results []stream.Result, width int) error {
	blocks := make([]string, len(results))
	for i, r := range results {
		block := r.String()
		if width > 0 {
			block = wordwrap.String(block, width)
		}
		blocks[i] = block
	}

	if len(blocks) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(out, strings.Join(blocks, "\n\n"))
	return err
}
