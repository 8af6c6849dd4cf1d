// Package candidate implements the MatchCandidate repository using PostgreSQL.
package candidate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/postgres"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

const table = "match_candidates"

var columns = []string{
	"id", "lost_report_id", "found_report_id", "category",
	"text_score", "location_score", "date_score", "image_score", "aggregate_score",
	"promoted", "explanation", "created_at", "updated_at", "deleted_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// upsertSQL inserts a candidate or re-scores the live row of the same pair.
// A promoted row is never touched: the WHERE on DO UPDATE suppresses the
// update and RETURNING yields nothing.
var upsertSQL = `
INSERT INTO match_candidates (
    id, lost_report_id, found_report_id, category,
    text_score, location_score, date_score, image_score, aggregate_score,
    explanation, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
ON CONFLICT (lost_report_id, found_report_id) WHERE deleted_at IS NULL
DO UPDATE SET
    text_score      = EXCLUDED.text_score,
    location_score  = EXCLUDED.location_score,
    date_score      = EXCLUDED.date_score,
    image_score     = EXCLUDED.image_score,
    aggregate_score = EXCLUDED.aggregate_score,
    explanation     = EXCLUDED.explanation,
    updated_at      = EXCLUDED.updated_at
WHERE match_candidates.promoted = false
RETURNING ` + strings.Join(columns, ", ") + `, (xmax = 0) AS inserted`

// Repo provides candidate persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new candidate repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Upsert stores c for its (lost, found) pair. Concurrent callers for the same
// pair converge on a single row. When the pair is already promoted the
// existing row is returned with UpsertUnchanged.
func (r *Repo) Upsert(ctx context.Context, c domain.MatchCandidate) (domain.MatchCandidate, domain.UpsertOutcome, error) {
	expl, err := json.Marshal(c.Explanation)
	if err != nil {
		return domain.MatchCandidate{}, 0, fmt.Errorf("marshal explanation: %w", err)
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := c.UpdatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var row upsertRow
	err = pgxscan.Get(ctx, r.q(ctx), &row, upsertSQL,
		c.ID, c.LostReportID, c.FoundReportID, string(c.Category),
		c.TextScore, c.LocationScore, c.DateScore, c.ImageScore, c.AggregateScore,
		expl, now,
	)
	switch {
	case err == nil:
		out, err := row.candidateRow.toDomain()
		if err != nil {
			return domain.MatchCandidate{}, 0, err
		}
		if row.Inserted {
			return out, domain.UpsertCreated, nil
		}
		return out, domain.UpsertUpdated, nil
	case pgxscan.NotFound(err):
		existing, err := r.GetByPair(ctx, c.LostReportID, c.FoundReportID)
		if err != nil {
			return domain.MatchCandidate{}, 0, err
		}
		return *existing, domain.UpsertUnchanged, nil
	default:
		return domain.MatchCandidate{}, 0, postgres.MapError(err, "match_candidate", c.ID)
	}
}

// GetByPair returns the live candidate of a (lost, found) pair.
func (r *Repo) GetByPair(ctx context.Context, lostID, foundID uuid.UUID) (*domain.MatchCandidate, error) {
	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"lost_report_id": lostID, "found_report_id": foundID}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get candidate query: %w", err)
	}

	var row candidateRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "match_candidate", lostID)
	}

	c, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// MarkPromoted flips promoted to true. It reports false when the candidate
// was already promoted or no longer exists.
func (r *Repo) MarkPromoted(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE match_candidates SET promoted = true, updated_at = now()
		 WHERE id = $1 AND promoted = false AND deleted_at IS NULL`, id)
	if err != nil {
		return false, postgres.MapError(err, "match_candidate", id)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByReport returns the live candidates a report takes part in, best first.
func (r *Repo) ListByReport(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.MatchCandidate, error) {
	b := psql.Select(columns...).From(table).
		Where(squirrel.Or{
			squirrel.Eq{"lost_report_id": reportID},
			squirrel.Eq{"found_report_id": reportID},
		}).
		Where("deleted_at IS NULL").
		OrderBy("aggregate_score DESC", "created_at DESC", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list candidates query: %w", err)
	}

	var rows []candidateRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "match_candidate", reportID)
	}

	out := make([]domain.MatchCandidate, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// SoftDeleteByReport soft-deletes every live candidate of a report.
func (r *Repo) SoftDeleteByReport(ctx context.Context, reportID uuid.UUID, at time.Time) (int64, error) {
	sql, args, err := psql.Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(squirrel.Or{
			squirrel.Eq{"lost_report_id": reportID},
			squirrel.Eq{"found_report_id": reportID},
		}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build soft delete candidates query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "match_candidate", reportID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type candidateRow struct {
	ID             uuid.UUID       `db:"id"`
	LostReportID   uuid.UUID       `db:"lost_report_id"`
	FoundReportID  uuid.UUID       `db:"found_report_id"`
	Category       string          `db:"category"`
	TextScore      decimal.Decimal `db:"text_score"`
	LocationScore  decimal.Decimal `db:"location_score"`
	DateScore      decimal.Decimal `db:"date_score"`
	ImageScore     decimal.Decimal `db:"image_score"`
	AggregateScore decimal.Decimal `db:"aggregate_score"`
	Promoted       bool            `db:"promoted"`
	Explanation    []byte          `db:"explanation"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DeletedAt      *time.Time      `db:"deleted_at"`
}

type upsertRow struct {
	candidateRow
	Inserted bool `db:"inserted"`
}

var errBadExplanation = errors.New("candidate explanation is not valid JSON")

func (row candidateRow) toDomain() (domain.MatchCandidate, error) {
	var expl domain.ScoreExplanation
	if len(row.Explanation) > 0 {
		if err := json.Unmarshal(row.Explanation, &expl); err != nil {
			return domain.MatchCandidate{}, fmt.Errorf("match_candidate %s: %w: %v", row.ID, errBadExplanation, err)
		}
	}
	return domain.MatchCandidate{
		ID:             row.ID,
		LostReportID:   row.LostReportID,
		FoundReportID:  row.FoundReportID,
		Category:       domain.Category(row.Category),
		TextScore:      row.TextScore,
		LocationScore:  row.LocationScore,
		DateScore:      row.DateScore,
		ImageScore:     row.ImageScore,
		AggregateScore: row.AggregateScore,
		Promoted:       row.Promoted,
		Explanation:    expl,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		DeletedAt:      row.DeletedAt,
	}, nil
}
