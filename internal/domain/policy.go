package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Weights are the per-factor weights of a category. Each is in [0, 1] and
// their sum must not exceed 1 so the aggregate stays within [0, 100].
type Weights struct {
	Keywords float64 `json:"keywords"`
	Location float64 `json:"location"`
	Date     float64 `json:"date"`
	Image    float64 `json:"image"`
}

// Sum returns the total of all factor weights.
func (w Weights) Sum() float64 {
	return w.Keywords + w.Location + w.Date + w.Image
}

// CategoryPolicy holds the thresholds and weights for one category.
type CategoryPolicy struct {
	CandidateThreshold decimal.Decimal
	PromotionThreshold decimal.Decimal
	Weights            Weights
}

// MatchingPolicy is the complete set of knobs the matching engine runs with.
type MatchingPolicy struct {
	TopNExpose                int
	MaxCandidatesPerItem      int
	MaxDateWindowDays         int
	// CandidateScanLimit caps the eligible reports loaded per run. Zero loads all.
	CandidateScanLimit        int
	LocationDecayKm           float64
	DateDecayDays             float64
	StrictLocationCountry     bool
	StrictLocationGovernorate bool
	Categories                map[Category]CategoryPolicy
}

// For returns the policy of category c.
func (p MatchingPolicy) For(c Category) (CategoryPolicy, bool) {
	cp, ok := p.Categories[c]
	return cp, ok
}

// DefaultMatchingPolicy returns the built-in policy.
func DefaultMatchingPolicy() MatchingPolicy {
	return MatchingPolicy{
		TopNExpose:           5,
		MaxCandidatesPerItem: 50,
		MaxDateWindowDays:    60,
		LocationDecayKm:      5,
		DateDecayDays:        30,
		Categories: map[Category]CategoryPolicy{
			CategoryPeople: {
				CandidateThreshold: decimal.NewFromInt(30),
				PromotionThreshold: decimal.NewFromInt(55),
				Weights:            Weights{Keywords: 0.45, Location: 0.35, Date: 0.20},
			},
			CategoryPets: {
				CandidateThreshold: decimal.NewFromInt(28),
				PromotionThreshold: decimal.NewFromInt(50),
				Weights:            Weights{Keywords: 0.35, Location: 0.30, Date: 0.15, Image: 0.20},
			},
			CategoryPersonalBelongings: {
				CandidateThreshold: decimal.NewFromInt(25),
				PromotionThreshold: decimal.NewFromInt(52),
				Weights:            Weights{Keywords: 0.40, Location: 0.25, Date: 0.15, Image: 0.20},
			},
		},
	}
}

// weightSumTolerance absorbs float error when weights add up to exactly 1.
const weightSumTolerance = 1e-9

// Validate checks the policy and collects every violation.
func (p MatchingPolicy) Validate() error {
	var errs []FieldError

	if p.TopNExpose < 0 {
		errs = append(errs, FieldError{Field: "top_n_expose", Message: "must be >= 0"})
	}
	if p.MaxCandidatesPerItem <= 0 {
		errs = append(errs, FieldError{Field: "max_candidates_per_item", Message: "must be > 0"})
	}
	if p.MaxDateWindowDays <= 0 {
		errs = append(errs, FieldError{Field: "max_date_window_days", Message: "must be > 0"})
	}
	if p.CandidateScanLimit < 0 {
		errs = append(errs, FieldError{Field: "candidate_scan_limit", Message: "must be >= 0"})
	}
	if p.LocationDecayKm <= 0 {
		errs = append(errs, FieldError{Field: "location_decay_km", Message: "must be > 0"})
	}
	if p.DateDecayDays <= 0 {
		errs = append(errs, FieldError{Field: "date_decay_days", Message: "must be > 0"})
	}

	for _, c := range AllCategories {
		cp, ok := p.Categories[c]
		if !ok {
			errs = append(errs, FieldError{Field: c.String(), Message: "policy missing"})
			continue
		}
		errs = append(errs, cp.validate(c.String())...)
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func (cp CategoryPolicy) validate(prefix string) []FieldError {
	var errs []FieldError

	w := cp.Weights
	factors := []struct {
		name string
		v    float64
	}{
		{"keywords", w.Keywords},
		{"location", w.Location},
		{"date", w.Date},
		{"image", w.Image},
	}
	for _, f := range factors {
		if f.v < 0 || f.v > 1 {
			errs = append(errs, FieldError{Field: prefix + ".weights." + f.name, Message: "must be within [0, 1]"})
		}
	}
	if w.Sum() > 1+weightSumTolerance {
		errs = append(errs, FieldError{
			Field:   prefix + ".weights",
			Message: fmt.Sprintf("sum must be <= 1 (got %.4f)", w.Sum()),
		})
	}

	if !inScoreRange(cp.CandidateThreshold) {
		errs = append(errs, FieldError{Field: prefix + ".candidate_threshold", Message: "must be within [0, 100]"})
	}
	if !inScoreRange(cp.PromotionThreshold) {
		errs = append(errs, FieldError{Field: prefix + ".promotion_threshold", Message: "must be within [0, 100]"})
	}
	if cp.PromotionThreshold.LessThan(cp.CandidateThreshold) {
		errs = append(errs, FieldError{Field: prefix + ".promotion_threshold", Message: "must be >= candidate_threshold"})
	}

	return errs
}

func inScoreRange(d decimal.Decimal) bool {
	return !d.LessThan(MinScore) && !d.GreaterThan(MaxScore)
}
