package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mileagelog/mileagelog/internal/csvtext"
	"github.com/mileagelog/mileagelog/internal/logging"
	"github.com/mileagelog/mileagelog/internal/pipeline"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeBadRequest    = "bad_request"
	CodeBadFormat     = "bad_format"
	CodeInvalidConfig = "invalid_config"
	CodeMalformedCSV  = "malformed_csv"
	CodeInternal      = "internal"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// classify maps a pipeline error to a status and code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, csvtext.ErrMalformedCSV):
		return http.StatusUnprocessableEntity, CodeMalformedCSV
	case errors.Is(err, pipeline.ErrInvalidConfig):
		return http.StatusBadRequest, CodeInvalidConfig
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error, status int, code string) {
	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"status", status,
		"code", code,
		"error", err.Error(),
	)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg, Code: code})
}
