package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/report"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createReportRequest struct {
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageRef    *string  `json:"image_ref"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	City        *string  `json:"city"`
	Governorate *string  `json:"governorate"`
	Country     *string  `json:"country"`
	EventDate   string   `json:"event_date"`
	Contact     *string  `json:"contact"`
}

// toInput converts the request. event_date accepts RFC 3339 or a bare date.
func (req createReportRequest) toInput() (report.CreateReportInput, error) {
	var eventDate time.Time
	if req.EventDate != "" {
		var err error
		eventDate, err = parseEventDate(req.EventDate)
		if err != nil {
			return report.CreateReportInput{}, domain.NewValidationError("event_date", "must be RFC 3339 or YYYY-MM-DD")
		}
	}

	return report.CreateReportInput{
		Type:        domain.ReportType(req.Type),
		Category:    domain.Category(req.Category),
		Title:       req.Title,
		Description: req.Description,
		ImageRef:    req.ImageRef,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		City:        req.City,
		Governorate: req.Governorate,
		Country:     req.Country,
		EventDate:   eventDate,
		Contact:     req.Contact,
	}, nil
}

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type locationResponse struct {
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	City        *string  `json:"city,omitempty"`
	Governorate *string  `json:"governorate,omitempty"`
	Country     *string  `json:"country,omitempty"`
}

type reportResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Type        string           `json:"type"`
	Category    string           `json:"category"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	ImageRef    *string          `json:"image_ref,omitempty"`
	Location    locationResponse `json:"location"`
	EventDate   time.Time        `json:"event_date"`
	Status      string           `json:"status"`
	Keywords    []string         `json:"keywords"`
	CreatedAt   time.Time        `json:"created_at"`
}

type candidateResponse struct {
	ID             string                  `json:"id"`
	LostReportID   string                  `json:"lost_report_id"`
	FoundReportID  string                  `json:"found_report_id"`
	Category       string                  `json:"category"`
	TextScore      decimal.Decimal         `json:"text_score"`
	LocationScore  decimal.Decimal         `json:"location_score"`
	DateScore      decimal.Decimal         `json:"date_score"`
	ImageScore     decimal.Decimal         `json:"image_score"`
	AggregateScore decimal.Decimal         `json:"aggregate_score"`
	Promoted       bool                    `json:"promoted"`
	Explanation    domain.ScoreExplanation `json:"explanation"`
}

// reportSummaryResponse is the public part of a report embedded in a match.
// Contact details are never included.
type reportSummaryResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	City      *string   `json:"city,omitempty"`
	EventDate time.Time `json:"event_date"`
}

type matchResponse struct {
	ID                 string                 `json:"id"`
	CandidateID        string                 `json:"candidate_id"`
	LostReportID       string                 `json:"lost_report_id"`
	FoundReportID      string                 `json:"found_report_id"`
	LostReport         *reportSummaryResponse `json:"lost_report,omitempty"`
	FoundReport        *reportSummaryResponse `json:"found_report,omitempty"`
	Confidence         decimal.Decimal        `json:"confidence"`
	Status             string                 `json:"status"`
	NotificationSent   bool                   `json:"notification_sent"`
	NotificationSentAt *time.Time             `json:"notification_sent_at,omitempty"`
	Explanation        string                 `json:"explanation"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

type matchingResponse struct {
	ReportID          string              `json:"report_id"`
	CandidatesCreated int                 `json:"candidates_created"`
	CandidatesUpdated int                 `json:"candidates_updated"`
	MatchesPromoted   int                 `json:"matches_promoted"`
	TopCandidates     []candidateResponse `json:"top_candidates"`
	Matches           []matchResponse     `json:"matches"`
}

type createReportResponse struct {
	Report   reportResponse    `json:"report"`
	Matching *matchingResponse `json:"matching"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toReportResponse(r *domain.Report) reportResponse {
	keywords := r.Features.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return reportResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		Type:        r.Type.String(),
		Category:    r.Category.String(),
		Title:       r.Title,
		Description: r.Description,
		ImageRef:    r.ImageRef,
		Location: locationResponse{
			Address:     r.Location.Address,
			Latitude:    r.Location.Latitude,
			Longitude:   r.Location.Longitude,
			City:        r.Location.City,
			Governorate: r.Location.Governorate,
			Country:     r.Location.Country,
		},
		EventDate: r.EventDate,
		Status:    r.Status.String(),
		Keywords:  keywords,
		CreatedAt: r.CreatedAt,
	}
}

func toReportSummary(r *domain.Report) *reportSummaryResponse {
	if r == nil {
		return nil
	}
	return &reportSummaryResponse{
		ID:        r.ID.String(),
		Type:      r.Type.String(),
		Category:  r.Category.String(),
		Title:     r.Title,
		Status:    r.Status.String(),
		City:      r.Location.City,
		EventDate: r.EventDate,
	}
}

func toCandidateResponse(c domain.MatchCandidate) candidateResponse {
	return candidateResponse{
		ID:             c.ID.String(),
		LostReportID:   c.LostReportID.String(),
		FoundReportID:  c.FoundReportID.String(),
		Category:       c.Category.String(),
		TextScore:      c.TextScore,
		LocationScore:  c.LocationScore,
		DateScore:      c.DateScore,
		ImageScore:     c.ImageScore,
		AggregateScore: c.AggregateScore,
		Promoted:       c.Promoted,
		Explanation:    c.Explanation,
	}
}

func toCandidateResponses(cs []domain.MatchCandidate) []candidateResponse {
	out := make([]candidateResponse, len(cs))
	for i, c := range cs {
		out[i] = toCandidateResponse(c)
	}
	return out
}

func toMatchResponse(m domain.Match) matchResponse {
	return matchResponse{
		ID:                 m.ID.String(),
		CandidateID:        m.CandidateID.String(),
		LostReportID:       m.LostReportID.String(),
		FoundReportID:      m.FoundReportID.String(),
		Confidence:         m.Confidence,
		Status:             m.Status.String(),
		NotificationSent:   m.NotificationSent,
		NotificationSentAt: m.NotificationSentAt,
		Explanation:        m.Explanation,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toMatchResponses(ms []domain.Match) []matchResponse {
	out := make([]matchResponse, len(ms))
	for i, m := range ms {
		out[i] = toMatchResponse(m)
	}
	return out
}

func toMatchingResponse(res *matching.Result) *matchingResponse {
	if res == nil {
		return nil
	}
	return &matchingResponse{
		ReportID:          res.ReportID.String(),
		CandidatesCreated: res.CandidatesCreated,
		CandidatesUpdated: res.CandidatesUpdated,
		MatchesPromoted:   res.MatchesPromoted,
		TopCandidates:     toCandidateResponses(res.TopExposed),
		Matches:           toMatchResponses(res.Matches),
	}
}
