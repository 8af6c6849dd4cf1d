package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScoreScale is the number of fractional digits kept on every score.
const ScoreScale = 2

var (
	// MinScore and MaxScore bound every sub-score and aggregate.
	MinScore = decimal.Zero
	MaxScore = decimal.NewFromInt(100)
)

// NewScore converts f to a score rounded to two decimals.
func NewScore(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(ScoreScale)
}

// ClampScore limits d to [MinScore, MaxScore].
func ClampScore(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(MinScore) {
		return MinScore
	}
	if d.GreaterThan(MaxScore) {
		return MaxScore
	}
	return d
}

// ScoreBreakdown holds the component and aggregate scores for a pair.
type ScoreBreakdown struct {
	Text      decimal.Decimal
	Location  decimal.Decimal
	Date      decimal.Decimal
	Image     decimal.Decimal
	Aggregate decimal.Decimal
}

// IsZero reports whether every component is zero.
func (b ScoreBreakdown) IsZero() bool {
	return b.Text.IsZero() && b.Location.IsZero() && b.Date.IsZero() && b.Image.IsZero()
}

// ScoreExplanation is the machine-readable record of how a pair was scored.
// It is stored as JSON next to the candidate.
type ScoreExplanation struct {
	TextScore       float64  `json:"text_score"`
	LocationScore   float64  `json:"location_score"`
	DateScore       float64  `json:"date_score"`
	ImageScore      float64  `json:"image_score"`
	Weights         Weights  `json:"weights"`
	TextSimilarity  float64  `json:"text_similarity"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
	DaysApart       float64  `json:"days_apart"`
	ImageSimilarity float64  `json:"image_similarity"`
	SharedKeywords  []string `json:"shared_keywords,omitempty"`
	Factors         []string `json:"factors"`
}

// Summary renders a short human-readable sentence for a match.
func (e ScoreExplanation) Summary() string {
	parts := []string{fmt.Sprintf("text %.2f", e.TextScore)}
	if e.DistanceKm != nil {
		parts = append(parts, fmt.Sprintf("location %.2f (%.2f km)", e.LocationScore, *e.DistanceKm))
	} else {
		parts = append(parts, "location n/a")
	}
	parts = append(parts, fmt.Sprintf("date %.2f (%.1f days)", e.DateScore, e.DaysApart))
	if e.ImageScore > 0 {
		parts = append(parts, fmt.Sprintf("image %.2f", e.ImageScore))
	}
	s := strings.Join(parts, "; ")
	if len(e.SharedKeywords) > 0 {
		s += "; shared: " + strings.Join(e.SharedKeywords, ", ")
	}
	return s
}

// MatchCandidate is a scored (lost, found) pair that cleared the candidate threshold.
// At most one non-deleted candidate exists per pair. Promoted only moves false -> true.
type MatchCandidate struct {
	ID             uuid.UUID
	LostReportID   uuid.UUID
	FoundReportID  uuid.UUID
	Category       Category
	TextScore      decimal.Decimal
	LocationScore  decimal.Decimal
	DateScore      decimal.Decimal
	ImageScore     decimal.Decimal
	AggregateScore decimal.Decimal
	Promoted       bool
	Explanation    ScoreExplanation
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// Match is a promoted candidate the owners are notified about.
// At most one non-deleted match exists per pair.
type Match struct {
	ID                 uuid.UUID
	CandidateID        uuid.UUID
	LostReportID       uuid.UUID
	FoundReportID      uuid.UUID
	Confidence         decimal.Decimal
	Status             MatchStatus
	NotificationSent   bool
	NotificationSentAt *time.Time
	Explanation        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

// NotificationTarget is a match joined with both report owners, used by the dispatcher.
type NotificationTarget struct {
	Match       Match
	Category    Category
	LostUserID  uuid.UUID
	LostTitle   string
	FoundUserID uuid.UUID
	FoundTitle  string
}

// MatchSummary is the payload delivered to one report owner.
type MatchSummary struct {
	MatchID          uuid.UUID       `json:"match_id"`
	ReportID         uuid.UUID       `json:"report_id"`
	OtherReportID    uuid.UUID       `json:"other_report_id"`
	OtherReportTitle string          `json:"other_report_title"`
	Category         Category        `json:"category"`
	Confidence       decimal.Decimal `json:"confidence"`
	Explanation      string          `json:"explanation"`
}

// Recipient is one owner to notify about a match.
type Recipient struct {
	UserID  uuid.UUID
	Summary MatchSummary
}

// Recipients builds one Recipient per owner: the lost owner first, then the
// found owner. An owner of both reports is notified once, about the lost report.
func (t NotificationTarget) Recipients() []Recipient {
	lost := Recipient{
		UserID: t.LostUserID,
		Summary: MatchSummary{
			MatchID:          t.Match.ID,
			ReportID:         t.Match.LostReportID,
			OtherReportID:    t.Match.FoundReportID,
			OtherReportTitle: t.FoundTitle,
			Category:         t.Category,
			Confidence:       t.Match.Confidence,
			Explanation:      t.Match.Explanation,
		},
	}
	if t.FoundUserID == t.LostUserID {
		return []Recipient{lost}
	}

	found := Recipient{
		UserID: t.FoundUserID,
		Summary: MatchSummary{
			MatchID:          t.Match.ID,
			ReportID:         t.Match.FoundReportID,
			OtherReportID:    t.Match.LostReportID,
			OtherReportTitle: t.LostTitle,
			Category:         t.Category,
			Confidence:       t.Match.Confidence,
			Explanation:      t.Match.Explanation,
		},
	}
	return []Recipient{lost, found}
}

// UpsertOutcome tells what a candidate upsert did.
type UpsertOutcome int

const (
	// UpsertCreated means a new candidate row was inserted.
	UpsertCreated UpsertOutcome = iota + 1
	// UpsertUpdated means an unpromoted candidate was re-scored.
	UpsertUpdated
	// UpsertUnchanged means the pair was already promoted and kept as-is.
	UpsertUnchanged
)

func (o UpsertOutcome) String() string {
	switch o {
	case UpsertCreated:
		return "created"
	case UpsertUpdated:
		return "updated"
	case UpsertUnchanged:
		return "unchanged"
	}
	return "unknown"
}
