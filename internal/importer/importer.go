package importer

import (
	"fmt"
	"strings"

	"github.com/mileagelog/mileagelog/internal/config"
	"github.com/mileagelog/mileagelog/internal/csvtext"
	"github.com/mileagelog/mileagelog/internal/model"
)

// Dataset names.
const (
	FormatTrips = "trips"
	FormatTolls = "tolls"
)

// Parser converts export text into records.
type Parser interface {
	Parse(text string) ([]model.Record, error)
	Format() string
}

// TemplateParser maps an export onto a configured header template. The header
// row is found heuristically, so banner rows above it and column drift in the
// export are tolerated.
type TemplateParser struct {
	format     string
	headerLine string
	template   []string
}

// NewTemplateParser builds a parser for headerLine, rejecting templates that
// lack any of the required columns.
func NewTemplateParser(format, headerLine string, required []string) (*TemplateParser, error) {
	template := csvtext.SplitTemplate(headerLine)
	if err := csvtext.RequireColumns(template, required...); err != nil {
		return nil, fmt.Errorf("%s header line: %w", format, err)
	}
	return &TemplateParser{format: format, headerLine: headerLine, template: template}, nil
}

// Format returns the dataset name.
func (p *TemplateParser) Format() string { return p.format }

// Template returns the ordered column names.
func (p *TemplateParser) Template() []string { return p.template }

// HeaderIndex returns the line the header locator picks in text.
func (p *TemplateParser) HeaderIndex(text string) int {
	return csvtext.LocateHeader(p.headerLine, text)
}

// Parse tokenizes text and maps every row below the detected header.
func (p *TemplateParser) Parse(text string) ([]model.Record, error) {
	rows, err := csvtext.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", p.format, err)
	}
	return csvtext.MapRecords(rows, p.template, p.HeaderIndex(text)+1), nil
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// FromSettings returns a registry with the trips and tolls parsers built from
// the configured header lines.
func FromSettings(s config.Settings) (*Registry, error) {
	trips, err := NewTemplateParser(FormatTrips, s.Get(config.KeyMileageHeaderLine), model.TripColumns)
	if err != nil {
		return nil, err
	}
	tolls, err := NewTemplateParser(FormatTolls, s.Get(config.KeyTollsHeaderLine), model.TollColumns)
	if err != nil {
		return nil, err
	}

	r := NewRegistry()
	r.Register(trips)
	r.Register(tolls)
	return r, nil
}
