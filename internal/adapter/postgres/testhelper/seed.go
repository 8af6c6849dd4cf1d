package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Cairo is the default location of seeded reports.
var (
	CairoLat = 30.0444
	CairoLon = 31.2357
)

// NewReport returns an active report with default values and a fresh ID.
// Callers tweak the result before passing it to SeedReport.
func NewReport(typ domain.ReportType, category domain.Category) domain.Report {
	now := time.Now().UTC().Truncate(time.Microsecond)
	lat, lon := CairoLat, CairoLon
	country := "Egypt"
	return domain.Report{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Type:        typ,
		Category:    category,
		Title:       "test report " + uniqueSuffix(),
		Description: "seeded by testhelper",
		Location: domain.Location{
			Address:   "Tahrir Square",
			Latitude:  &lat,
			Longitude: &lon,
			Country:   &country,
		},
		EventDate: now.Add(-24 * time.Hour),
		Status:    domain.ReportStatusActive,
		Features: domain.Features{
			Keywords:  []string{"seed"},
			Embedding: []float64{1, 0, 0},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SeedReport inserts r as-is and returns it.
func SeedReport(t *testing.T, pool *pgxpool.Pool, r domain.Report) domain.Report {
	t.Helper()

	keywords := r.Features.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	embedding := r.Features.Embedding
	if embedding == nil {
		embedding = []float64{}
	}
	imageEmbedding := r.Features.ImageEmbedding
	if imageEmbedding == nil {
		imageEmbedding = []float64{}
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reports (id, user_id, type, category, title, description, image_ref,
		                      address, latitude, longitude, city, governorate, country,
		                      event_date, contact, status, keywords, embedding, image_embedding,
		                      created_at, updated_at, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		r.ID, r.UserID, string(r.Type), string(r.Category), r.Title, r.Description, r.ImageRef,
		r.Location.Address, r.Location.Latitude, r.Location.Longitude, r.Location.City, r.Location.Governorate, r.Location.Country,
		r.EventDate, r.Contact, string(r.Status), keywords, embedding, imageEmbedding,
		r.CreatedAt, r.UpdatedAt, r.DeletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReport insert: %v", err)
	}

	return r
}

// SeedPair seeds a LOST and a FOUND report of the same category near each other.
func SeedPair(t *testing.T, pool *pgxpool.Pool, category domain.Category) (lost, found domain.Report) {
	t.Helper()
	lost = SeedReport(t, pool, NewReport(domain.ReportTypeLost, category))
	found = SeedReport(t, pool, NewReport(domain.ReportTypeFound, category))
	return lost, found
}

// SeedCandidate inserts an unpromoted candidate for (lost, found) with the
// given aggregate score and returns its id.
func SeedCandidate(t *testing.T, pool *pgxpool.Pool, lost, found domain.Report, aggregate string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO match_candidates (id, lost_report_id, found_report_id, category,
		                               text_score, location_score, date_score, image_score, aggregate_score)
		 VALUES ($1, $2, $3, $4, 0, 0, 0, 0, $5::numeric)`,
		id, lost.ID, found.ID, string(lost.Category), aggregate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCandidate insert: %v", err)
	}
	return id
}
