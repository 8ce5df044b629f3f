package output

import (
	"github.com/goccy/go-json"
)

// JSONFormatter renders the report as indented JSON. Empty sections are
// omitted.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
