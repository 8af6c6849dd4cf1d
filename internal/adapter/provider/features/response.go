package features

import "github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"

// extractRequest is the body sent to the extraction service.
type extractRequest struct {
	Text         string  `json:"text"`
	ImageRef     *string `json:"image_ref,omitempty"`
	LocationText string  `json:"location_text,omitempty"`
}

// extractResponse is the body returned by the extraction service.
type extractResponse struct {
	Keywords       []string  `json:"keywords"`
	Embedding      []float64 `json:"embedding"`
	ImageEmbedding []float64 `json:"image_embedding"`
}

func (r extractResponse) toDomain() domain.Features {
	return domain.Features{
		Keywords:       domain.NormalizeKeywords(r.Keywords),
		Embedding:      r.Embedding,
		ImageEmbedding: r.ImageEmbedding,
	}
}
