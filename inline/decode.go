package inline

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/streamfmt/streamfmt/stream"
)

// Decode reads candidates from r. The input may be a single JSON object, a JSON
// array of objects, or newline-delimited objects.
func Decode(r io.Reader) ([]*stream.Candidate, error) {
	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	decoder := json.NewDecoder(br)

	if first == '[' {
		var candidates []*stream.Candidate
		if err := decoder.Decode(&candidates); err != nil {
			return nil, fmt.Errorf("decode candidates: %w", err)
		}
		return candidates, nil
	}

	var candidates []*stream.Candidate
	for {
		var c stream.Candidate
		err := decoder.Decode(&c)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode candidate %d: %w", len(candidates)+1, err)
		}
		candidates = append(candidates, &c)
	}

	return candidates, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
