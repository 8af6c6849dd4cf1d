package matching

import (
	"bytes"
	"slices"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching/scoring"
)

// scoredPair is a pair that cleared the candidate threshold.
type scoredPair struct {
	pair   domain.ReportPair
	other  domain.Report
	result scoring.Result
}

// scorePairs scores r against every eligible report and keeps the pairs at
// or above the category's candidate threshold. All-zero pairs are dropped.
func scorePairs(r domain.Report, others []domain.Report, params scoring.Params, cp domain.CategoryPolicy) []scoredPair {
	out := make([]scoredPair, 0, len(others))
	for _, o := range others {
		if o.ID == r.ID || o.Category != r.Category {
			continue
		}
		pair, ok := domain.NewReportPair(r, o)
		if !ok {
			continue
		}
		res := scoring.Score(pair, params)
		if res.Discard() || res.Scores.Aggregate.LessThan(cp.CandidateThreshold) {
			continue
		}
		out = append(out, scoredPair{pair: pair, other: o, result: res})
	}
	return out
}

// rankCandidates orders pairs best first and keeps at most limit.
// Ties go to the most recently created opposite report, then to the lower id.
func rankCandidates(pairs []scoredPair, limit int) []scoredPair {
	slices.SortStableFunc(pairs, func(a, b scoredPair) int {
		if c := b.result.Scores.Aggregate.Cmp(a.result.Scores.Aggregate); c != 0 {
			return c
		}
		if c := b.other.CreatedAt.Compare(a.other.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.other.ID[:], b.other.ID[:])
	})
	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

// toCandidate converts a scored pair into a candidate ready for upsert.
func (p scoredPair) toCandidate() domain.MatchCandidate {
	s := p.result.Scores
	return domain.MatchCandidate{
		LostReportID:   p.pair.Lost.ID,
		FoundReportID:  p.pair.Found.ID,
		Category:       p.pair.Lost.Category,
		TextScore:      s.Text,
		LocationScore:  s.Location,
		DateScore:      s.Date,
		ImageScore:     s.Image,
		AggregateScore: s.Aggregate,
		Explanation:    p.result.Explanation,
	}
}
