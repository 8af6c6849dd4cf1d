package report

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 4000
	maxPlaceLen       = 200
	// futureSlack tolerates clock and timezone skew on the event date.
	futureSlack = 24 * time.Hour
)

// CreateReportInput holds the parameters for creating a report.
type CreateReportInput struct {
	Type        domain.ReportType
	Category    domain.Category
	Title       string
	Description string
	ImageRef    *string
	Address     string
	Latitude    *float64
	Longitude   *float64
	City        *string
	Governorate *string
	Country     *string
	EventDate   time.Time
	Contact     *string
}

// Validate checks all fields and collects all errors.
func (i CreateReportInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be LOST or FOUND"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be PEOPLE, PETS or PERSONAL_BELONGINGS"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 4000 characters"})
	}
	if len(i.Address) > maxPlaceLen {
		errs = append(errs, domain.FieldError{Field: "address", Message: "max 200 characters"})
	}

	if (i.Latitude == nil) != (i.Longitude == nil) {
		errs = append(errs, domain.FieldError{Field: "location", Message: "latitude and longitude must be set together"})
	}
	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be within [-90, 90]"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be within [-180, 180]"})
	}

	if i.EventDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "required"})
	} else if i.EventDate.After(time.Now().Add(futureSlack)) {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "must not be in the future"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toReport builds the report to persist. Features are filled in later.
func (i CreateReportInput) toReport(id, userID uuid.UUID, now time.Time) domain.Report {
	return domain.Report{
		ID:          id,
		UserID:      userID,
		Type:        i.Type,
		Category:    i.Category,
		Title:       strings.TrimSpace(i.Title),
		Description: strings.TrimSpace(i.Description),
		ImageRef:    trimOrNil(i.ImageRef),
		Location: domain.Location{
			Address:     strings.TrimSpace(i.Address),
			Latitude:    i.Latitude,
			Longitude:   i.Longitude,
			City:        trimOrNil(i.City),
			Governorate: trimOrNil(i.Governorate),
			Country:     trimOrNil(i.Country),
		},
		EventDate: i.EventDate.UTC(),
		Contact:   trimOrNil(i.Contact),
		Status:    domain.ReportStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DeleteReportInput holds the parameters for deleting a report.
type DeleteReportInput struct {
	ReportID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteReportInput) Validate() error {
	if i.ReportID == uuid.Nil {
		return domain.NewValidationError("report_id", "required")
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
