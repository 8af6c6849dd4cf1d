// Package report implements the Report repository using PostgreSQL.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/postgres"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

const table = "reports"

var columns = []string{
	"id", "user_id", "type", "category", "title", "description", "image_ref",
	"address", "latitude", "longitude", "city", "governorate", "country",
	"event_date", "contact", "status", "keywords", "embedding", "image_embedding",
	"created_at", "updated_at", "deleted_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a non-deleted report by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get report query: %w", err)
	}

	var row reportRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	rep := row.toDomain()
	return &rep, nil
}

// GetByIDs returns the non-deleted reports among ids, in no particular order.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Report, error) {
	if len(ids) == 0 {
		return []domain.Report{}, nil
	}

	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"id": ids}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reports query: %w", err)
	}

	var rows []reportRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("get reports by ids: %w", err)
	}

	out := make([]domain.Report, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// FindEligible returns the active, non-deleted reports matching f.
// The most recently created reports come first. A positive f.Limit caps the
// result; zero returns every eligible report.
func (r *Repo) FindEligible(ctx context.Context, f domain.EligibilityFilter) ([]domain.Report, error) {
	b := psql.Select(columns...).From(table).
		Where(squirrel.Eq{
			"type":     string(f.Type),
			"category": string(f.Category),
			"status":   string(domain.ReportStatusActive),
		}).
		Where("deleted_at IS NULL").
		Where(squirrel.NotEq{"id": f.ExcludeID}).
		Where(squirrel.GtOrEq{"event_date": f.From}).
		Where(squirrel.LtOrEq{"event_date": f.To}).
		OrderBy("created_at DESC", "id")

	if f.Country != nil {
		b = b.Where("lower(trim(country)) = lower(trim(?))", *f.Country)
	}
	if f.Governorate != nil {
		b = b.Where("lower(trim(governorate)) = lower(trim(?))", *f.Governorate)
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build eligible reports query: %w", err)
	}

	var rows []reportRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", f.ExcludeID)
	}

	out := make([]domain.Report, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ListActiveIDs returns the ids of every active report, oldest first.
// A nil category lists all categories.
func (r *Repo) ListActiveIDs(ctx context.Context, category *domain.Category) ([]uuid.UUID, error) {
	b := psql.Select("id").From(table).
		Where(squirrel.Eq{"status": string(domain.ReportStatusActive)}).
		Where("deleted_at IS NULL").
		OrderBy("created_at", "id")
	if category != nil {
		b = b.Where(squirrel.Eq{"category": string(*category)})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active ids query: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, r.q(ctx), &ids, sql, args...); err != nil {
		return nil, fmt.Errorf("list active report ids: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new report and returns the persisted domain.Report.
func (r *Repo) Create(ctx context.Context, rep domain.Report) (*domain.Report, error) {
	in := fromDomain(rep)

	sql, args, err := psql.Insert(table).
		Columns(columns[:len(columns)-1]...).
		Values(
			in.ID, in.UserID, in.Type, in.Category, in.Title, in.Description, in.ImageRef,
			in.Address, in.Latitude, in.Longitude, in.City, in.Governorate, in.Country,
			in.EventDate, in.Contact, in.Status, in.Keywords, in.Embedding, in.ImageEmbedding,
			in.CreatedAt, in.UpdatedAt,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert report query: %w", err)
	}

	var row reportRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", rep.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// MarkMatched moves the given reports from ACTIVE to MATCHED.
// Reports in any other state are left untouched. Returns the number of rows changed.
func (r *Repo) MarkMatched(ctx context.Context, ids ...uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := psql.Update(table).
		Set("status", string(domain.ReportStatusMatched)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids, "status": string(domain.ReportStatusActive)}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark matched query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "report", ids[0])
	}
	return tag.RowsAffected(), nil
}

// Reactivate moves MATCHED reports back to ACTIVE when no live PENDING or
// CONFIRMED match references them any more.
func (r *Repo) Reactivate(ctx context.Context, ids ...uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.q(ctx).Exec(ctx, `
		UPDATE reports r SET status = 'ACTIVE', updated_at = now()
		WHERE r.id = ANY($1) AND r.status = 'MATCHED' AND r.deleted_at IS NULL
		  AND NOT EXISTS (
		      SELECT 1 FROM matches m
		      WHERE (m.lost_report_id = r.id OR m.found_report_id = r.id)
		        AND m.deleted_at IS NULL
		        AND m.status IN ('PENDING', 'CONFIRMED'))`, ids)
	if err != nil {
		return 0, postgres.MapError(err, "report", ids[0])
	}
	return tag.RowsAffected(), nil
}

// Close moves the given reports to CLOSED. Returns the number of rows changed.
func (r *Repo) Close(ctx context.Context, ids ...uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := psql.Update(table).
		Set("status", string(domain.ReportStatusClosed)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.NotEq{"status": string(domain.ReportStatusClosed)}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build close reports query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "report", ids[0])
	}
	return tag.RowsAffected(), nil
}

// SoftDelete sets deleted_at on a report. A missing or already deleted
// report yields domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	sql, args, err := psql.Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build soft delete report query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "report", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
