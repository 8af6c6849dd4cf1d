// Package match implements the Match repository using PostgreSQL.
package match

import (
	"context"
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

const table = "matches"

var columns = []string{
	"id", "candidate_id", "lost_report_id", "found_report_id", "confidence", "status",
	"notification_sent", "notification_sent_at", "explanation",
	"created_at", "updated_at", "deleted_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides match persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new match repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func qualified(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts m unless a live match already exists for its pair or
// candidate. The second return value is true only when a row was inserted;
// otherwise the existing match of the pair is returned.
func (r *Repo) Create(ctx context.Context, m domain.Match) (domain.Match, bool, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = domain.MatchStatusPending
	}
	now := m.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var row matchRow
	err := pgxscan.Get(ctx, r.q(ctx), &row, `
		INSERT INTO matches (id, candidate_id, lost_report_id, found_report_id, confidence, status, explanation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT DO NOTHING
		RETURNING `+strings.Join(columns, ", "),
		m.ID, m.CandidateID, m.LostReportID, m.FoundReportID, m.Confidence, string(m.Status), m.Explanation, now,
	)
	switch {
	case err == nil:
		return row.toDomain(), true, nil
	case pgxscan.NotFound(err):
		existing, err := r.GetByPair(ctx, m.LostReportID, m.FoundReportID)
		if err != nil {
			return domain.Match{}, false, err
		}
		return *existing, false, nil
	default:
		return domain.Match{}, false, postgres.MapError(err, "match", m.ID)
	}
}

// UpdateStatus moves a match from one status to another. It fails with
// domain.ErrConflict when the match is no longer in status from.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.MatchStatus) (*domain.Match, error) {
	sql, args, err := psql.Update(table).
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": string(from)}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update match status query: %w", err)
	}

	var row matchRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("match %s: status changed concurrently: %w", id, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "match", id)
	}

	m := row.toDomain()
	return &m, nil
}

// ClaimNotification marks a match as notified. It reports true for exactly
// one caller per match, however many race for it.
func (r *Repo) ClaimNotification(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE matches SET notification_sent = true, notification_sent_at = $2, updated_at = $2
		 WHERE id = $1 AND notification_sent = false AND deleted_at IS NULL`, id, at)
	if err != nil {
		return false, postgres.MapError(err, "match", id)
	}
	return tag.RowsAffected() == 1, nil
}

// SoftDeleteByReport soft-deletes every live match of a report.
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
		return 0, fmt.Errorf("build soft delete matches query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "match", reportID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a live match by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByPair returns the live match of a (lost, found) pair.
func (r *Repo) GetByPair(ctx context.Context, lostID, foundID uuid.UUID) (*domain.Match, error) {
	return r.getOne(ctx, squirrel.Eq{"lost_report_id": lostID, "found_report_id": foundID}, lostID)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, id uuid.UUID) (*domain.Match, error) {
	sql, args, err := psql.Select(columns...).From(table).
		Where(where).
		Where("deleted_at IS NULL").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get match query: %w", err)
	}

	var row matchRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "match", id)
	}

	m := row.toDomain()
	return &m, nil
}

// ListByReport returns the live matches a report takes part in, newest first.
func (r *Repo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error) {
	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Or{
			squirrel.Eq{"lost_report_id": reportID},
			squirrel.Eq{"found_report_id": reportID},
		}).
		Where("deleted_at IS NULL").
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	return r.selectMatches(ctx, reportID, sql, args)
}

// ListByUser returns the live matches involving any report owned by userID.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, f domain.MatchListFilter) ([]domain.Match, error) {
	b := psql.Select(qualified("m")...).
		From("matches m").
		Join("reports l ON l.id = m.lost_report_id").
		Join("reports f ON f.id = m.found_report_id").
		Where(squirrel.Or{
			squirrel.Eq{"l.user_id": userID},
			squirrel.Eq{"f.user_id": userID},
		}).
		Where("m.deleted_at IS NULL").
		OrderBy("m.created_at DESC", "m.id")
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"m.status": string(*f.Status)})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user matches query: %w", err)
	}

	return r.selectMatches(ctx, userID, sql, args)
}

// ListUnnotified returns live matches whose notification was never claimed,
// oldest first, joined with both report owners.
func (r *Repo) ListUnnotified(ctx context.Context, limit int) ([]domain.NotificationTarget, error) {
	cols := append(qualified("m"),
		"l.category AS category",
		"l.user_id AS lost_user_id", "l.title AS lost_title",
		"f.user_id AS found_user_id", "f.title AS found_title",
	)
	b := psql.Select(cols...).
		From("matches m").
		Join("reports l ON l.id = m.lost_report_id").
		Join("reports f ON f.id = m.found_report_id").
		Where("m.notification_sent = false").
		Where("m.deleted_at IS NULL").
		OrderBy("m.created_at", "m.id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list unnotified query: %w", err)
	}

	var rows []targetRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list unnotified matches: %w", err)
	}

	out := make([]domain.NotificationTarget, len(rows))
	for i, row := range rows {
		out[i] = domain.NotificationTarget{
			Match:       row.matchRow.toDomain(),
			Category:    domain.Category(row.Category),
			LostUserID:  row.LostUserID,
			LostTitle:   row.LostTitle,
			FoundUserID: row.FoundUserID,
			FoundTitle:  row.FoundTitle,
		}
	}
	return out, nil
}

func (r *Repo) selectMatches(ctx context.Context, id uuid.UUID, sql string, args []any) ([]domain.Match, error) {
	var rows []matchRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "match", id)
	}

	out := make([]domain.Match, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type matchRow struct {
	ID                 uuid.UUID       `db:"id"`
	CandidateID        uuid.UUID       `db:"candidate_id"`
	LostReportID       uuid.UUID       `db:"lost_report_id"`
	FoundReportID      uuid.UUID       `db:"found_report_id"`
	Confidence         decimal.Decimal `db:"confidence"`
	Status             string          `db:"status"`
	NotificationSent   bool            `db:"notification_sent"`
	NotificationSentAt *time.Time      `db:"notification_sent_at"`
	Explanation        string          `db:"explanation"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
	DeletedAt          *time.Time      `db:"deleted_at"`
}

type targetRow struct {
	matchRow
	Category    string    `db:"category"`
	LostUserID  uuid.UUID `db:"lost_user_id"`
	LostTitle   string    `db:"lost_title"`
	FoundUserID uuid.UUID `db:"found_user_id"`
	FoundTitle  string    `db:"found_title"`
}

func (row matchRow) toDomain() domain.Match {
	return domain.Match{
		ID:                 row.ID,
		CandidateID:        row.CandidateID,
		LostReportID:       row.LostReportID,
		FoundReportID:      row.FoundReportID,
		Confidence:         row.Confidence,
		Status:             domain.MatchStatus(row.Status),
		NotificationSent:   row.NotificationSent,
		NotificationSentAt: row.NotificationSentAt,
		Explanation:        row.Explanation,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		DeletedAt:          row.DeletedAt,
	}
}
