package report

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

// reportRow mirrors a reports row for scanning.
type reportRow struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	Type           string     `db:"type"`
	Category       string     `db:"category"`
	Title          string     `db:"title"`
	Description    string     `db:"description"`
	ImageRef       *string    `db:"image_ref"`
	Address        string     `db:"address"`
	Latitude       *float64   `db:"latitude"`
	Longitude      *float64   `db:"longitude"`
	City           *string    `db:"city"`
	Governorate    *string    `db:"governorate"`
	Country        *string    `db:"country"`
	EventDate      time.Time  `db:"event_date"`
	Contact        *string    `db:"contact"`
	Status         string     `db:"status"`
	Keywords       []string   `db:"keywords"`
	Embedding      []float64  `db:"embedding"`
	ImageEmbedding []float64  `db:"image_embedding"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

func (row reportRow) toDomain() domain.Report {
	return domain.Report{
		ID:          row.ID,
		UserID:      row.UserID,
		Type:        domain.ReportType(row.Type),
		Category:    domain.Category(row.Category),
		Title:       row.Title,
		Description: row.Description,
		ImageRef:    row.ImageRef,
		Location: domain.Location{
			Address:     row.Address,
			Latitude:    row.Latitude,
			Longitude:   row.Longitude,
			City:        row.City,
			Governorate: row.Governorate,
			Country:     row.Country,
		},
		EventDate: row.EventDate,
		Contact:   row.Contact,
		Status:    domain.ReportStatus(row.Status),
		Features: domain.Features{
			Keywords:       nilIfEmpty(row.Keywords),
			Embedding:      nilIfEmpty(row.Embedding),
			ImageEmbedding: nilIfEmpty(row.ImageEmbedding),
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		DeletedAt: row.DeletedAt,
	}
}

// fromDomain converts r into a row. Empty feature slices are stored as
// empty arrays, never NULL.
func fromDomain(r domain.Report) reportRow {
	status := r.Status
	if status == "" {
		status = domain.ReportStatusActive
	}
	return reportRow{
		ID:             r.ID,
		UserID:         r.UserID,
		Type:           string(r.Type),
		Category:       string(r.Category),
		Title:          r.Title,
		Description:    r.Description,
		ImageRef:       r.ImageRef,
		Address:        r.Location.Address,
		Latitude:       r.Location.Latitude,
		Longitude:      r.Location.Longitude,
		City:           r.Location.City,
		Governorate:    r.Location.Governorate,
		Country:        r.Location.Country,
		EventDate:      r.EventDate,
		Contact:        r.Contact,
		Status:         string(status),
		Keywords:       emptyIfNil(r.Features.Keywords),
		Embedding:      emptyIfNil(r.Features.Embedding),
		ImageEmbedding: emptyIfNil(r.Features.ImageEmbedding),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		DeletedAt:      r.DeletedAt,
	}
}

func joinColumns() string { return strings.Join(columns, ", ") }

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
