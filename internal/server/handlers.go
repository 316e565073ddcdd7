package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mileagelog/mileagelog/internal/logging"
	"github.com/mileagelog/mileagelog/internal/pipeline"
	"github.com/mileagelog/mileagelog/internal/report"
	"github.com/mileagelog/mileagelog/internal/source"
)

// Multipart part names of a reconcile request.
const (
	partTrips  = "trips"
	partTolls  = "tolls"
	partConfig = "config"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleReconcile reconciles the uploaded trips and tolls exports and returns
// the report in the requested format.
func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest, CodeBadFormat)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		respondError(w, r, fmt.Errorf("file too large or invalid form: %w", err), http.StatusBadRequest, CodeBadRequest)
		return
	}

	files := source.Memory{}
	var in pipeline.Inputs
	for _, part := range []string{partTrips, partTolls, partConfig} {
		data, ok, err := formFile(r, part)
		if err != nil {
			respondError(w, r, err, http.StatusBadRequest, CodeBadRequest)
			return
		}
		if !ok {
			continue
		}
		files[part] = data
		switch part {
		case partTrips:
			in.Trips = part
		case partTolls:
			in.Tolls = part
		}
	}

	log := logging.FromContext(r.Context())
	runner := pipeline.NewRunner(files, log, s.location)

	settings := s.settings.Clone()
	if _, ok := files[partConfig]; ok {
		settings, err = runner.LoadSettings(r.Context(), partConfig)
		if err != nil {
			respondError(w, r, err, http.StatusBadRequest, CodeInvalidConfig)
			return
		}
	}

	res, err := runner.Run(r.Context(), settings, in)
	if err != nil {
		status, code := classify(err)
		respondError(w, r, err, status, code)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, report.New(res.RunID.String(), res.Settings, res.Ledger)); err != nil {
		respondError(w, r, err, http.StatusInternalServerError, CodeInternal)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("X-Run-ID", res.RunID.String())
	if format == report.FormatXLSX || format == report.FormatCSV {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "mileage-log."+string(format)))
	}
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn("writing response", "error", err)
	}
}

// formFile returns the contents of an uploaded part, reporting ok == false
// when the part was not sent.
func formFile(r *http.Request, name string) ([]byte, bool, error) {
	f, _, err := r.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, true, nil
}
