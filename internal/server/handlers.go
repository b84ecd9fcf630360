// Package server handles HTTP requests and middleware for the extraction
// service.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/evergreenlab/plantmap/internal/container"
	"github.com/evergreenlab/plantmap/internal/geo"
	"github.com/evergreenlab/plantmap/internal/kml"

	"github.com/rs/zerolog/log"
)

// HandleExtract accepts a KML or KMZ document and responds with the
// extracted features as a GeoJSON FeatureCollection. The document arrives
// either as a multipart form field named "file", or as the raw request body
// with the filename given by the X-Filename header or the name query
// parameter.
func (s *ServerContext) HandleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, name, err := s.readUpload(w, r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "document too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "unreadable upload", http.StatusBadRequest)
		return
	}

	text, err := container.ReadDocumentBytes(data, name)
	if err != nil {
		if errors.Is(err, container.ErrNoDocument) {
			http.Error(w, "archive contains no kml document", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "unreadable container", http.StatusBadRequest)
		return
	}

	marks, err := kml.ExtractPlacemarks(text)
	if err != nil {
		http.Error(w, "malformed kml document", http.StatusBadRequest)
		return
	}

	fc := geo.FromPlacemarks(marks)
	if s.Config.Attribution != "" {
		fc.Properties = map[string]interface{}{"attribution": s.Config.Attribution}
	}

	log.Debug().
		Str("name", name).
		Int("placemarks", len(marks)).
		Int("features", len(fc.Features)).
		Msg("Document extracted")

	s.writeGeoJSON(w, fc)
}

// HandleHealth reports service liveness.
func (s *ServerContext) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// readUpload returns the uploaded document bytes and the best filename hint
// available. The body is capped at the configured upload size.
func (s *ServerContext) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.Config.MaxUploadSize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", err
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", err
		}
		return data, header.Filename, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", err
	}

	name := r.Header.Get("X-Filename")
	if name == "" {
		name = r.URL.Query().Get("name")
	}
	if name == "" {
		name = "doc.kml"
	}
	return data, name, nil
}

// writeGeoJSON encodes the collection, minified when configured.
func (s *ServerContext) writeGeoJSON(w http.ResponseWriter, fc geo.FeatureCollection) {
	payload, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}

	if s.Config.Compact {
		if compact, err := s.minifier.Bytes("application/json", payload); err == nil {
			payload = compact
		}
	}

	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(payload)
}
