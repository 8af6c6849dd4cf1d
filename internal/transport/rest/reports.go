package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/report"
)

type reportService interface {
	CreateReport(ctx context.Context, in report.CreateReportInput) (*report.CreateResult, error)
	DeleteReport(ctx context.Context, in report.DeleteReportInput) error
}

type reportMatcher interface {
	MatchReport(ctx context.Context, reportID uuid.UUID) (*matching.Result, error)
	ListReportCandidates(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.MatchCandidate, error)
	ListReportMatches(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error)
}

// ReportHandler serves the report REST endpoints.
type ReportHandler struct {
	reports reportService
	matcher reportMatcher
	log     *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reports reportService, matcher reportMatcher, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		matcher: matcher,
		log:     logger.With("handler", "report"),
	}
}

// Create handles POST /api/reports.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.reports.CreateReport(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createReportResponse{
		Report:   toReportResponse(res.Report),
		Matching: toMatchingResponse(res.Matching),
	})
}

// Delete handles DELETE /api/reports/{id}.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.reports.DeleteReport(r.Context(), report.DeleteReportInput{ReportID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Match handles POST /api/reports/{id}/matching.
func (h *ReportHandler) Match(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.matcher.MatchReport(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMatchingResponse(res))
}

// Candidates handles GET /api/reports/{id}/candidates?limit=N.
func (h *ReportHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cands, err := h.matcher.ListReportCandidates(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCandidateResponses(cands))
}

// Matches handles GET /api/reports/{id}/matches.
func (h *ReportHandler) Matches(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	matches, err := h.matcher.ListReportMatches(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeMatchList(h.log, w, r, matches)
}
