package textstatshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/textstats"
	"paydesk/internal/platform/metrics"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type Handler struct {
	Metrics         *metrics.Collector
	DefaultTopWords int
}

func NewHandler(collector *metrics.Collector, defaultTopWords int) *Handler {
	return &Handler{Metrics: collector, DefaultTopWords: defaultTopWords}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/analyze", h.handleAnalyze)
}

type analyzePayload struct {
	Text     string `json:"text"`
	TopWords int    `json:"topWords"`
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload analyzePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON", reqID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("text", payload.Text, "text is required")
	if payload.TopWords < 0 {
		validator.Add("topWords", "must not be negative")
	}
	if validator.Reject(w, reqID) {
		return
	}

	topN := payload.TopWords
	if topN == 0 {
		topN = h.DefaultTopWords
	}

	report := textstats.Analyze(payload.Text, topN)
	if h.Metrics != nil {
		h.Metrics.RecordAnalysis()
	}
	api.Success(w, report, reqID)
}
