package scoring

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

// Factor names recorded in ScoreExplanation.Factors.
const (
	FactorText     = "text"
	FactorLocation = "location"
	FactorDate     = "date"
	FactorImage    = "image"
)

// Params are the inputs of a scoring run besides the two reports.
type Params struct {
	Weights         domain.Weights
	LocationDecayKm float64
	DateDecayDays   float64
}

// ParamsFor builds scoring parameters from a policy and one of its categories.
func ParamsFor(p domain.MatchingPolicy, cp domain.CategoryPolicy) Params {
	return Params{
		Weights:         cp.Weights,
		LocationDecayKm: p.LocationDecayKm,
		DateDecayDays:   p.DateDecayDays,
	}
}

// Result is the outcome of scoring one pair.
type Result struct {
	Scores      domain.ScoreBreakdown
	Explanation domain.ScoreExplanation
}

// Discard reports whether the pair carries no signal at all.
func (r Result) Discard() bool { return r.Scores.IsZero() }

// Score scores a (lost, found) pair.
//
//	text     = cos(eL, eF) · Wk · 100
//	location = max(0, 1 - d/Dkm) · Wl · 100      (0 without coordinates)
//	date     = max(0, 1 - |Δdays|/Ddays) · Wd · 100
//	image    = cos(iL, iF) · Wi · 100
//	total    = clamp(text + location + date + image, 0, 100)
//
// Every component is rounded to two decimals before summing. Callers pass
// the pair in canonical orientation, so the result does not depend on which
// report triggered the run.
func Score(pair domain.ReportPair, p Params) Result {
	lost, found := pair.Lost, pair.Found
	w := p.Weights

	expl := domain.ScoreExplanation{
		Weights:        w,
		SharedKeywords: domain.SharedKeywords(lost.Features.Keywords, found.Features.Keywords),
		Factors:        []string{},
	}

	// Text
	textSim := Cosine(lost.Features.Embedding, found.Features.Embedding)
	if lost.Features.HasEmbedding() && found.Features.HasEmbedding() {
		expl.Factors = append(expl.Factors, FactorText)
	}
	text := component(textSim, w.Keywords)

	// Location
	location := decimal.Zero
	if lost.Location.HasCoordinates() && found.Location.HasCoordinates() {
		d := Haversine(*lost.Location.Latitude, *lost.Location.Longitude,
			*found.Location.Latitude, *found.Location.Longitude)
		expl.DistanceKm = &d
		expl.Factors = append(expl.Factors, FactorLocation)
		location = component(LinearDecay(d, p.LocationDecayKm), w.Location)
	}

	// Date
	days := DaysApart(lost.EventDate, found.EventDate)
	expl.DaysApart = round2(days)
	expl.Factors = append(expl.Factors, FactorDate)
	date := component(LinearDecay(days, p.DateDecayDays), w.Date)

	// Image
	image := decimal.Zero
	imageSim := 0.0
	if w.Image > 0 && lost.Features.HasImageEmbedding() && found.Features.HasImageEmbedding() {
		imageSim = Cosine(lost.Features.ImageEmbedding, found.Features.ImageEmbedding)
		expl.Factors = append(expl.Factors, FactorImage)
		image = component(imageSim, w.Image)
	}

	total := domain.ClampScore(text.Add(location).Add(date).Add(image))

	expl.TextSimilarity = round4(textSim)
	expl.ImageSimilarity = round4(imageSim)
	expl.TextScore = text.InexactFloat64()
	expl.LocationScore = location.InexactFloat64()
	expl.DateScore = date.InexactFloat64()
	expl.ImageScore = image.InexactFloat64()

	return Result{
		Scores: domain.ScoreBreakdown{
			Text:      text,
			Location:  location,
			Date:      date,
			Image:     image,
			Aggregate: total,
		},
		Explanation: expl,
	}
}

// DaysApart returns the absolute difference between a and b in fractional days.
func DaysApart(a, b time.Time) float64 {
	return math.Abs(a.Sub(b).Hours()) / 24
}

// component converts a similarity in [0, 1] and a weight into a score
// within [0, weight·100], rounded to two decimals.
func component(similarity, weight float64) decimal.Decimal {
	if weight <= 0 {
		return decimal.Zero
	}
	ceiling := weight * 100
	return domain.NewScore(clamp(similarity*ceiling, 0, ceiling))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
