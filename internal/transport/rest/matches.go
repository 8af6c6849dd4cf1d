package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching"
	loaders "github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/transport/dataloader"
)

type matchService interface {
	ListMyMatches(ctx context.Context, f domain.MatchListFilter) ([]domain.Match, error)
	GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error)
	UpdateMatchStatus(ctx context.Context, in matching.UpdateStatusInput) (*domain.Match, error)
}

// MatchHandler serves the match REST endpoints.
type MatchHandler struct {
	svc matchService
	log *slog.Logger
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(svc matchService, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{svc: svc, log: logger.With("handler", "match")}
}

// List handles GET /api/matches?status=PENDING&limit=50&offset=0.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	var f domain.MatchListFilter
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.MatchStatus(s)
		f.Status = &st
	}

	var err error
	if f.Limit, err = queryInt(r, "limit", 0); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if f.Offset, err = queryInt(r, "offset", 0); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	matches, err := h.svc.ListMyMatches(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeMatchList(h.log, w, r, matches)
}

// Get handles GET /api/matches/{id}.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.GetMatch(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeMatch(w, r, *m)
}

// UpdateStatus handles PATCH /api/matches/{id}/status.
func (h *MatchHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.UpdateMatchStatus(r.Context(), matching.UpdateStatusInput{
		MatchID: id,
		Status:  domain.MatchStatus(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeMatch(w, r, *m)
}

func (h *MatchHandler) writeMatch(w http.ResponseWriter, r *http.Request, m domain.Match) {
	resp := []matchResponse{toMatchResponse(m)}
	if err := withReports(r.Context(), resp, []domain.Match{m}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp[0])
}

func writeMatchList(log *slog.Logger, w http.ResponseWriter, r *http.Request, ms []domain.Match) {
	resp := toMatchResponses(ms)
	if err := withReports(r.Context(), resp, ms); err != nil {
		handleError(log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// withReports embeds the lost and found report summaries into resp.
// Every key is queued before any is awaited, so the lookups share one batch.
func withReports(ctx context.Context, resp []matchResponse, ms []domain.Match) error {
	byID := loaders.FromContext(ctx).ReportByID

	type pair struct{ lost, found dataloader.Thunk[*domain.Report] }
	pending := make([]pair, len(ms))
	for i, m := range ms {
		pending[i] = pair{
			lost:  byID.Load(ctx, m.LostReportID),
			found: byID.Load(ctx, m.FoundReportID),
		}
	}

	for i, p := range pending {
		lost, err := p.lost()
		if err != nil {
			return err
		}
		found, err := p.found()
		if err != nil {
			return err
		}
		resp[i].LostReport = toReportSummary(lost)
		resp[i].FoundReport = toReportSummary(found)
	}
	return nil
}
