package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"review-backend/internal/analysis"
	"review-backend/internal/ingest"
	"review-backend/internal/models"

	"github.com/go-chi/chi/v5"
)

const MaxFileSize = 100 * 1024 * 1024 // 100MB

type Handler struct {
	Analysis *analysis.Service
}

func NewHandler(analysisSvc *analysis.Service) *Handler {
	return &Handler{Analysis: analysisSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthCheck)
	r.Post("/api/analyze", h.Analyze)
	r.Post("/api/validate", h.Validate)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// Analyze handles the reviews file upload and returns the full analytics
// payload. Unreadable or unsupported input is the client's fault (400);
// everything past ingest is ours (500).
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Analysis.Analyze(data, filename)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ingest.ErrUnreadableFile) || errors.Is(err, ingest.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
		} else {
			slog.Error("analysis failed", "file", filename, "error", err)
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, result)
}

// Validate scores a prediction set against an uploaded ground-truth file.
// A predictions payload that does not decode is a client error; file and
// metric faults are server errors.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var preds []models.Prediction
	if err := json.Unmarshal([]byte(r.FormValue("predictions_json")), &preds); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid predictions payload: %v", err))
		return
	}

	result, err := h.Analysis.Validate(preds, data, filename)
	if err != nil {
		slog.Error("validation failed", "file", filename, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, result)
}

func readUpload(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(MaxFileSize); err != nil {
		return nil, "", fmt.Errorf("file too large")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("no file uploaded")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("error reading upload")
	}
	return data, header.Filename, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
}
