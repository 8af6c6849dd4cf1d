// Package features derives keywords and embeddings from report content.
package features

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

const (
	extractPath       = "/extract"
	defaultRetryDelay = 500 * time.Millisecond
)

// HTTPExtractor calls an external feature-extraction service.
type HTTPExtractor struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewHTTPExtractor creates an extractor for the service at baseURL.
func NewHTTPExtractor(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPExtractor {
	return &HTTPExtractor{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: defaultRetryDelay,
		log:        logger.With("adapter", "features_http"),
	}
}

// Extract sends the report content to the service and returns its features.
// Missing fields in the response stay empty.
func (e *HTTPExtractor) Extract(ctx context.Context, text string, imageRef *string, locationText string) (domain.Features, error) {
	payload, err := json.Marshal(extractRequest{
		Text:         text,
		ImageRef:     imageRef,
		LocationText: locationText,
	})
	if err != nil {
		return domain.Features{}, fmt.Errorf("features: encode request: %w", err)
	}

	resp, err := e.doWithRetry(ctx, payload)
	if err != nil {
		e.log.ErrorContext(ctx, "feature extraction failed", slog.String("error", err.Error()))
		return domain.Features{}, fmt.Errorf("features: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Features{}, fmt.Errorf("features: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Features{}, fmt.Errorf("features: read body: %w", err)
	}

	var out extractResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.Features{}, fmt.Errorf("features: decode json: %w", err)
	}

	f := out.toDomain()
	e.log.DebugContext(ctx, "features extracted",
		slog.Int("keywords", len(f.Keywords)),
		slog.Int("embedding_dims", len(f.Embedding)),
		slog.Bool("image_embedding", f.HasImageEmbedding()),
	)
	return f, nil
}

// doWithRetry posts the payload with a single retry on 5xx or network errors.
func (e *HTTPExtractor) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	resp, err := e.post(ctx, payload)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	e.log.WarnContext(ctx, "feature extraction retry", slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(e.retryDelay):
	}

	return e.post(ctx, payload)
}

func (e *HTTPExtractor) post(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+extractPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return e.httpClient.Do(req)
}
