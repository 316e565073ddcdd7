package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format selects a writer.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// ForPath picks the format from a file extension; anything unrecognized,
// including stdout ("-" or ""), is text.
func ForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// ParseFormat resolves a format name. The empty name means JSON, the default
// for API responses.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatJSON, nil
	case FormatText, FormatCSV, FormatXLSX, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q", name)
	}
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Write renders rep in format f.
func Write(w io.Writer, f Format, rep Report) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rep)
	case FormatXLSX:
		return WriteXLSX(w, rep)
	case FormatJSON:
		return WriteJSON(w, rep)
	case FormatText:
		return WriteText(w, rep)
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}
