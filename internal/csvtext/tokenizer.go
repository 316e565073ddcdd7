// Package csvtext reads the CSV exports produced by trip loggers and toll
// agencies. The grammar is deliberately permissive and is not full RFC 4180:
//
//   - fields are separated by ',' and records by "\r\n", "\r" or "\n";
//   - a field may be quoted with '"', where "" is a literal quote and the
//     field may span separators and line breaks;
//   - an unquoted field runs to the next separator or line break, is not
//     trimmed, and may not contain '"';
//   - input without a final line break is read as if it had one.
//
// A single line break at the end of the input never produces an extra row. A
// blank line inside the input produces an empty row. An empty field directly
// before a line break is kept only when the row already has fields or the
// field was quoted, so "a,\n" reads as ["a", ""] and "\n" reads as [].
package csvtext

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedCSV reports input the tokenizer could not consume completely.
var ErrMalformedCSV = errors.New("malformed CSV")

// Parse splits text into rows of fields. It returns ErrMalformedCSV, wrapped
// with the failing offset, when quoting is broken; no partial result is
// returned in that case.
func Parse(text string) ([][]string, error) {
	if text == "" {
		return nil, nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	var rows [][]string
	var row []string
	i := 0
	for i < len(text) {
		start := i
		field, next, quoted, err := readField(text, i)
		if err != nil {
			return nil, err
		}
		i = next
		if i >= len(text) {
			return nil, fmt.Errorf("%w: missing record terminator at offset %d", ErrMalformedCSV, start)
		}

		switch text[i] {
		case ',':
			row = append(row, field)
			i++
		case '\r', '\n':
			if field != "" || quoted || len(row) > 0 {
				row = append(row, field)
			}
			if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			i++
			if row == nil {
				row = []string{}
			}
			rows = append(rows, row)
			row = nil
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedCSV, text[i], i)
		}
	}
	return rows, nil
}

// readField lexes one field starting at i and returns its value and the
// offset of the byte following it.
func readField(text string, i int) (string, int, bool, error) {
	if text[i] != '"' {
		j := i
		for j < len(text) && !isFieldEnd(text[j]) {
			j++
		}
		return text[i:j], j, false, nil
	}

	var b strings.Builder
	j := i + 1
	for {
		k := strings.IndexByte(text[j:], '"')
		if k < 0 {
			return "", 0, true, fmt.Errorf("%w: unterminated quoted field at offset %d", ErrMalformedCSV, i)
		}
		b.WriteString(text[j : j+k])
		j += k + 1
		if j < len(text) && text[j] == '"' {
			b.WriteByte('"')
			j++
			continue
		}
		return b.String(), j, true, nil
	}
}

func isFieldEnd(c byte) bool {
	return c == ',' || c == '"' || c == '\r' || c == '\n'
}

// Format serializes rows in the grammar Parse reads: fields joined with ',',
// rows terminated by "\n", and fields quoted when they contain a separator, a
// quote or a line break. A row holding a single empty field is written as ""
// so it does not read back as a blank line.
func Format(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		if len(row) == 1 && row[0] == "" {
			b.WriteString(`""`)
		}
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			if strings.ContainsAny(field, ",\"\r\n") {
				b.WriteByte('"')
				b.WriteString(strings.ReplaceAll(field, `"`, `""`))
				b.WriteByte('"')
				continue
			}
			b.WriteString(field)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
