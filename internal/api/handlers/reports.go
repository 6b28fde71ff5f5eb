package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/communitywatch/backend/internal/api/httpx"
	"github.com/communitywatch/backend/internal/api/validate"
	"github.com/communitywatch/backend/internal/metrics"
	"github.com/communitywatch/backend/internal/middleware"
	"github.com/communitywatch/backend/internal/models"
	"github.com/communitywatch/backend/internal/services"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

type createReportReq struct {
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	Severity    string `json:"severity"`
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	rep, err := h.svc.Create(r.Context(), services.CreateReportInput{
		Type:        req.Type,
		Location:    req.Location,
		Description: req.Description,
		Contact:     req.Contact,
		Severity:    req.Severity,
	})
	var verrs validate.Errs
	switch {
	case err == nil:
		metrics.ReportsSubmitted.Inc()
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"message": "Report submitted successfully",
			"report":  rep,
		})
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, "All fields are required")
	default:
		slog.Error("submit report", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		// the submit path intentionally echoes detail to the caller
		httpx.WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to submit report",
			"details": err.Error(),
		})
	}
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		slog.Error("fetch reports", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}
	if reports == nil {
		reports = []models.Report{}
	}
	httpx.WriteJSON(w, http.StatusOK, reports)
}
