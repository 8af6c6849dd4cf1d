package matching

import (
	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

// UpdateStatusInput holds the parameters for moving a match to a new status.
type UpdateStatusInput struct {
	MatchID uuid.UUID
	Status  domain.MatchStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.MatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "match_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of PENDING, CONFIRMED, REJECTED, RESOLVED"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RescoreInput holds the parameters of a bulk re-scoring run.
type RescoreInput struct {
	Category    *domain.Category
	Concurrency int
}

// Validate checks all fields and collects all errors.
func (i RescoreInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.Concurrency < 0 || i.Concurrency > 64 {
		errs = append(errs, domain.FieldError{Field: "concurrency", Message: "must be within [0, 64]"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
