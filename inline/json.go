package inline

import (
	"encoding/json"
	"io"

	"github.com/abouramd/live-stream/model"
)

// Output is the JSON document written by every inline command.
type Output struct {
	// Query describes what was asked, e.g. "matches/live" or "streams/<match id>".
	Query   string         `json:"query"`
	Sports  []model.Sport  `json:"sports,omitempty"`
	Matches []model.Match  `json:"matches,omitempty"`
	Match   *model.Match   `json:"match,omitempty"`
	Streams []model.Stream `json:"streams,omitempty"`
	// Picked is the stream chosen by the stream picker.
	Picked *model.Stream `json:"picked,omitempty"`
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
