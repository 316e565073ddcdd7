package csvtext

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mileagelog/mileagelog/internal/model"
)

// ErrMissingColumn reports a header template lacking a column the caller needs.
var ErrMissingColumn = errors.New("header template missing column")

// SplitTemplate turns a configured header line into its ordered column names.
func SplitTemplate(headerLine string) []string {
	return strings.Split(headerLine, ",")
}

// RequireColumns checks that template names every column in names.
func RequireColumns(template []string, names ...string) error {
	var missing []string
	for _, name := range names {
		if !slices.Contains(template, name) {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// MapRecords binds every row from index skip onward to template by position.
// Names past the end of a short row are left absent; fields past the end of
// the template are dropped. Column text in the rows is not checked against
// the template.
func MapRecords(rows [][]string, template []string, skip int) []model.Record {
	skip = max(skip, 0)
	if skip >= len(rows) {
		return nil
	}

	records := make([]model.Record, 0, len(rows)-skip)
	for _, row := range rows[skip:] {
		var rec model.Record
		for i, name := range template {
			if i >= len(row) {
				break
			}
			rec.Set(name, row[i])
		}
		records = append(records, rec)
	}
	return records
}
