package matching

import (
	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

// Result is the outcome of one ScoreAndPromote run.
type Result struct {
	ReportID          uuid.UUID
	CandidatesCreated int
	CandidatesUpdated int
	MatchesPromoted   int
	// TopExposed holds the best non-promoted candidates, at most TopNExpose.
	TopExposed []domain.MatchCandidate
	// Matches lists the matches created by this run.
	Matches []domain.Match
}

// RescoreResult aggregates a bulk re-scoring run.
type RescoreResult struct {
	Reports           int
	Failed            int
	CandidatesCreated int
	CandidatesUpdated int
	MatchesPromoted   int
}

func (r *RescoreResult) add(res *Result) {
	r.Reports++
	r.CandidatesCreated += res.CandidatesCreated
	r.CandidatesUpdated += res.CandidatesUpdated
	r.MatchesPromoted += res.MatchesPromoted
}
