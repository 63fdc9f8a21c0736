package server

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/snapsell/vision-api/internal/listing"
	"github.com/snapsell/vision-api/internal/vision"
)

const (
	maxUploadBytes  = 20 << 20
	defaultImageExt = ".jpg"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyzeImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, s.defaultProvider, clientInputError("Please upload an image file."))
		return
	}

	provider := r.FormValue("provider")
	if provider == "" {
		provider = s.defaultProvider
	}
	model := r.FormValue("model")

	s.analytics.Capture("analyze_image.started", map[string]any{"provider": provider})

	data, apiErr := s.analyze(r, provider, model)
	if apiErr != nil {
		s.writeError(w, provider, apiErr)
		return
	}

	s.analytics.Capture("analyze_image.succeeded", map[string]any{
		"provider": provider,
		"hasTitle": data.Title != "",
	})
	writeJSON(w, http.StatusOK, data)
}

// analyze runs the request lifecycle: validate the upload, stage it to a
// temp file, query the vision provider, and normalize the response. The
// staged file is removed on every exit path.
func (s *Server) analyze(r *http.Request, provider, model string) (listing.ListingData, *apiError) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return listing.ListingData{}, clientInputError("Please upload an image file.")
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return listing.ListingData{}, clientInputError("Please upload an image file.")
	}

	imagePath, cleanup, err := stageUpload(file, header.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to stage uploaded image")
		return listing.ListingData{}, internalError("Failed to store uploaded image.")
	}
	defer cleanup()

	querier, err := s.registry.Get(provider)
	if err != nil {
		return listing.ListingData{}, classifyProviderError(provider, err)
	}

	raw, err := querier.Query(r.Context(), vision.Request{
		Prompt:    vision.Prompt,
		Model:     model,
		ImagePath: imagePath,
		MIMEType:  contentType,
	})
	if err != nil {
		return listing.ListingData{}, classifyProviderError(provider, err)
	}
	if strings.TrimSpace(raw) == "" {
		return listing.ListingData{}, emptyResponseError()
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(listing.ExtractObject(raw)), &payload); err != nil {
		return listing.ListingData{}, parseError(raw)
	}

	return listing.Normalize(payload), nil
}

// stageUpload writes the upload to a per-request temp file, preserving the
// original extension so providers can infer the format. The returned cleanup
// tolerates the file already being gone.
func stageUpload(file multipart.File, filename string) (string, func(), error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = defaultImageExt
	}
	tmp, err := os.CreateTemp("", "snapsell-upload-*"+ext)
	if err != nil {
		return "", nil, err
	}
	path := tmp.Name()
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("failed to remove staged upload")
		}
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

func (s *Server) writeError(w http.ResponseWriter, provider string, apiErr *apiError) {
	s.analytics.Capture("analyze_image.failed", map[string]any{
		"provider":  provider,
		"errorKind": string(apiErr.kind),
	})
	log.Error().
		Str("provider", provider).
		Str("errorKind", string(apiErr.kind)).
		Str("detail", apiErr.detail).
		Msg("analyze image failed")
	writeJSON(w, apiErr.status, map[string]string{"detail": apiErr.detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
