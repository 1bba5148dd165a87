// Package export renders exercises as CSV or JSON for the in-app preview.
package export

import (
	"fmt"
	"io"

	"github.com/sadopc/exlog/internal/exercise"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Formats lists the supported encodings in picker order.
var Formats = []Format{FormatJSON, FormatCSV}

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Write encodes exercises to w in the given format.
func Write(w io.Writer, f Format, exercises []exercise.Exercise) error {
	switch f {
	case FormatJSON:
		return ToJSON(w, exercises)
	case FormatCSV:
		return ToCSV(w, exercises)
	}
	return fmt.Errorf("unknown export format %q", f)
}
