package result

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Report is the JSON document written by the search command.
type Report struct {
	Target    uint64     `json:"target"`
	Limit     int        `json:"limit"`
	Solutions []Solution `json:"solutions"`
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	if r.Solutions == nil {
		r.Solutions = []Solution{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(r), "encode report")
}

// ReadJSON reads a report written by WriteJSON.
func ReadJSON(r io.Reader) (Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, errors.Wrap(err, "decode report")
	}
	return rep, nil
}
