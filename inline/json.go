package inline

import (
	"encoding/json"

	"github.com/streamfmt/streamfmt/stream"
)

type Output struct {
	Minimalistic bool            `json:"minimalistic"`
	Result       []stream.Result `json:"result"`
}

func asJson(results []stream.Result, minimalistic bool) ([]byte, error) {
	if results == nil {
		results = []stream.Result{}
	}

	return json.Marshal(&Output{
		Minimalistic: minimalistic,
		Result:       results,
	})
}
