package domain

import (
	"time"

	"github.com/google/uuid"
)

// EligibilityFilter selects the reports a given report may be matched against.
type EligibilityFilter struct {
	ExcludeID   uuid.UUID
	Type        ReportType
	Category    Category
	From        time.Time
	To          time.Time
	Country     *string
	Governorate *string
	Limit       int
}

// NewEligibilityFilter builds the filter for r under policy p.
// Strict location dimensions are only applied when r has a value for them.
func NewEligibilityFilter(r Report, p MatchingPolicy) EligibilityFilter {
	window := time.Duration(p.MaxDateWindowDays) * 24 * time.Hour
	f := EligibilityFilter{
		ExcludeID: r.ID,
		Type:      r.Type.Opposite(),
		Category:  r.Category,
		From:      r.EventDate.Add(-window),
		To:        r.EventDate.Add(window),
		Limit:     p.CandidateScanLimit,
	}
	if p.StrictLocationCountry && nonBlank(r.Location.Country) {
		f.Country = r.Location.Country
	}
	if p.StrictLocationGovernorate && nonBlank(r.Location.Governorate) {
		f.Governorate = r.Location.Governorate
	}
	return f
}

// MatchListFilter pages through matches.
type MatchListFilter struct {
	Status *MatchStatus
	Limit  int
	Offset int
}

func nonBlank(s *string) bool {
	return s != nil && len(NormalizeText(*s)) > 0
}
