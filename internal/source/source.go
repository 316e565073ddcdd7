// Package source supplies the raw text of trip, toll and settings files.
package source

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/mileagelog/mileagelog/internal/source Source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source returns the decoded text of a named input.
type Source interface {
	ReadText(ctx context.Context, name string) (string, error)
}

// Decode reads r as UTF-8 text. A UTF-8 byte order mark is dropped and input
// starting with a UTF-16 byte order mark is transcoded; invalid UTF-8 bytes
// become U+FFFD.
func Decode(r io.Reader) (string, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return string(data), nil
}

// Dir reads files from the filesystem. Relative names resolve against Root.
type Dir struct {
	Root string
}

// ReadText opens name and decodes it.
func (d Dir) ReadText(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := name
	if d.Root != "" && !filepath.IsAbs(name) {
		path = filepath.Join(d.Root, name)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	text, err := Decode(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return text, nil
}

// Memory serves inputs held in memory, such as uploaded files.
type Memory map[string][]byte

// ReadText decodes the named entry.
func (m Memory) ReadText(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, ok := m[name]
	if !ok {
		return "", fmt.Errorf("reading %s: %w", name, fs.ErrNotExist)
	}
	return Decode(bytes.NewReader(data))
}
