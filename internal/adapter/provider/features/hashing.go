package features

import (
	"context"
	"hash/fnv"
	"math"
	"unicode/utf8"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

const (
	defaultDimensions = 256
	maxKeywords       = 20
	minTokenRunes     = 2
)

// stopwords are dropped before hashing. English and Arabic fillers only.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "at": {}, "by": {}, "for": {},
	"from": {}, "has": {}, "he": {}, "her": {}, "his": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "my": {}, "near": {}, "of": {}, "on": {}, "or": {},
	"she": {}, "the": {}, "to": {}, "was": {}, "with": {},
	"في": {}, "من": {}, "على": {}, "إلى": {}, "عن": {}, "مع": {}, "هذا": {},
	"هذه": {}, "التي": {}, "الذي": {},
}

// HashingExtractor builds deterministic bag-of-words embeddings in process.
// Each token is hashed into one of the vector's buckets with a signed
// weight and the result is L2-normalised. It produces no image embeddings.
type HashingExtractor struct {
	dims int
}

// NewHashingExtractor creates an extractor producing vectors of dims entries.
func NewHashingExtractor(dims int) *HashingExtractor {
	if dims <= 0 {
		dims = defaultDimensions
	}
	return &HashingExtractor{dims: dims}
}

// Extract tokenises text and locationText. Text without any usable token
// yields empty features.
func (h *HashingExtractor) Extract(ctx context.Context, text string, imageRef *string, locationText string) (domain.Features, error) {
	if err := ctx.Err(); err != nil {
		return domain.Features{}, err
	}

	tokens := contentTokens(text)
	if len(tokens) == 0 {
		return domain.Features{}, nil
	}

	return domain.Features{
		Keywords:  keywords(tokens),
		Embedding: h.embed(append(tokens, contentTokens(locationText)...)),
	}, nil
}

func (h *HashingExtractor) embed(tokens []string) []float64 {
	vec := make([]float64, h.dims)
	for _, t := range tokens {
		sum := fnv.New64a()
		sum.Write([]byte(t))
		v := sum.Sum64()

		sign := 1.0
		if v>>63 == 1 {
			sign = -1.0
		}
		vec[v%uint64(h.dims)] += sign
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func contentTokens(text string) []string {
	raw := domain.Tokenize(text)
	out := raw[:0]
	for _, t := range raw {
		if utf8.RuneCountInString(t) < minTokenRunes {
			continue
		}
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// keywords keeps the first maxKeywords distinct tokens.
func keywords(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, maxKeywords)
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == maxKeywords {
			break
		}
	}
	return domain.NormalizeKeywords(out)
}
