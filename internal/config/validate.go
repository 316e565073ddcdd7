package config

import (
	"fmt"
	"strings"

	"github.com/mileagelog/mileagelog/internal/model"
)

// ValidationError describes one problem with a settings value.
type ValidationError struct {
	Key         string
	Description string
	Fatal       bool // reconciliation cannot run at all
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Description)
}

// Validate checks the keys reconciliation reads. Missing header lines are
// fatal; numbers that do not parse are not, since the affected amounts are
// reported as NaN instead.
func (s Settings) Validate() []ValidationError {
	var errs []ValidationError

	for _, key := range []string{KeyMileageHeaderLine, KeyTollsHeaderLine} {
		if strings.TrimSpace(s[key]) == "" {
			errs = append(errs, ValidationError{Key: key, Description: "header line is empty", Fatal: true})
		}
	}

	for _, key := range []string{KeyMileageRate, KeyDistanceToRowan} {
		v, ok := s[key]
		if !ok {
			errs = append(errs, ValidationError{Key: key, Description: "not set"})
			continue
		}
		if _, ok := model.ParseNumber(v); !ok {
			errs = append(errs, ValidationError{Key: key, Description: fmt.Sprintf("%q is not a number", v)})
		}
	}

	if s[KeyHomeAddressStreetName] == "" {
		errs = append(errs, ValidationError{
			Key:         KeyHomeAddressStreetName,
			Description: "empty; the commute deduction will match every first and last trip of a day",
		})
	}

	return errs
}
