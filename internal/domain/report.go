package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report is a user-submitted description of a lost or found entity.
type Report struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        ReportType
	Category    Category
	Title       string
	Description string
	ImageRef    *string
	Location    Location
	EventDate   time.Time
	Contact     *string
	Status      ReportStatus
	Features    Features
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsActive reports whether r can take part in matching.
func (r Report) IsActive() bool {
	return r.Status == ReportStatusActive && !r.IsDeleted()
}

// IsDeleted reports whether the report was soft-deleted.
func (r Report) IsDeleted() bool {
	return r.DeletedAt != nil
}

// Location is where a report's event happened. Coordinates are optional.
type Location struct {
	Address     string
	Latitude    *float64
	Longitude   *float64
	City        *string
	Governorate *string
	Country     *string
}

// HasCoordinates reports whether both latitude and longitude are set.
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Text joins the human-readable parts of the location for feature extraction.
func (l Location) Text() string {
	parts := make([]string, 0, 4)
	if s := strings.TrimSpace(l.Address); s != "" {
		parts = append(parts, s)
	}
	for _, p := range []*string{l.City, l.Governorate, l.Country} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	return strings.Join(parts, ", ")
}

// Features are the derived descriptors produced by the feature extractor.
// Any field may be empty; scoring treats missing data as zero similarity.
type Features struct {
	Keywords       []string
	Embedding      []float64
	ImageEmbedding []float64
}

// HasEmbedding reports whether a text embedding is available.
func (f Features) HasEmbedding() bool { return len(f.Embedding) > 0 }

// HasImageEmbedding reports whether an image embedding is available.
func (f Features) HasImageEmbedding() bool { return len(f.ImageEmbedding) > 0 }

// ReportPair is a (lost, found) pair in canonical orientation.
type ReportPair struct {
	Lost  Report
	Found Report
}

// NewReportPair orients a and b so that Lost is the LOST report.
// The second return value is false when both reports have the same type.
func NewReportPair(a, b Report) (ReportPair, bool) {
	switch {
	case a.Type == ReportTypeLost && b.Type == ReportTypeFound:
		return ReportPair{Lost: a, Found: b}, true
	case a.Type == ReportTypeFound && b.Type == ReportTypeLost:
		return ReportPair{Lost: b, Found: a}, true
	}
	return ReportPair{}, false
}
