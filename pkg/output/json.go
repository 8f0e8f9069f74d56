package output

import (
	"io"

	"github.com/stripecheck/stripecheck/pkg/jsonutil"
	"github.com/stripecheck/stripecheck/pkg/result"
)

// JSONWriter renders a report as indented JSON to an injected writer,
// for piping results into other tooling alongside the CSV artifact.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON writer targeting w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Write serializes the full report, run metadata included.
func (jw *JSONWriter) Write(report *result.Report) error {
	if err := jsonutil.MarshalWrite(jw.w, report, "  "); err != nil {
		return err
	}
	_, err := jw.w.Write([]byte{'\n'})
	return err
}
