// Package webhook delivers match notifications by POSTing JSON to a URL.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

const (
	eventMatchFound = "match.found"
	maxErrorBody    = 512
)

// payload is the body posted for every recipient.
type payload struct {
	Event  string              `json:"event"`
	UserID uuid.UUID           `json:"user_id"`
	Match  domain.MatchSummary `json:"match"`
	SentAt time.Time           `json:"sent_at"`
}

// Sender posts one request per recipient to the configured URL. A request
// is never repeated: the receiver may have seen a request that timed out.
type Sender struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewSender creates a webhook sender.
func NewSender(url string, timeout time.Duration, logger *slog.Logger) *Sender {
	return &Sender{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "webhook"),
	}
}

// Notify posts the summary for userID once. Any non-2xx answer or transport
// failure is returned to the caller.
func (s *Sender) Notify(ctx context.Context, userID uuid.UUID, summary domain.MatchSummary) error {
	body, err := json.Marshal(payload{
		Event:  eventMatchFound,
		UserID: userID,
		Match:  summary,
		SentAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("webhook: encode payload: %w", err)
	}

	resp, err := s.post(ctx, body)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("webhook: unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	s.log.DebugContext(ctx, "webhook delivered",
		slog.String("match_id", summary.MatchID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

func (s *Sender) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event", eventMatchFound)
	return s.httpClient.Do(req)
}
