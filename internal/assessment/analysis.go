package assessment

import (
	"sort"
	"time"

	"github.com/ricardomestre7/restauris-2.0-app/internal/catalog"
	"github.com/ricardomestre7/restauris-2.0-app/internal/scoring"
)

// CurrentAndPrevious returns the newest and second newest records. Validity
// is not checked here: an invalid record can be current and the caller has
// to handle it.
func CurrentAndPrevious(history []Record) (current, previous *Record) {
	sorted := sortedBy(history, func(a, b time.Time) bool { return a.After(b) })
	if len(sorted) > 0 {
		current = &sorted[0]
	}
	if len(sorted) > 1 {
		previous = &sorted[1]
	}
	return current, previous
}

type SeriesStatus string

const (
	SeriesReady SeriesStatus = "ready"
	// SeriesNoHistory: fewer than two records exist at all.
	SeriesNoHistory SeriesStatus = "no_history"
	// SeriesInsufficientValid: two or more records exist but fewer than two
	// of them have complete scores.
	SeriesInsufficientValid SeriesStatus = "insufficient_valid"
)

type DataPoint struct {
	AssessmentID string         `json:"assessment_id"`
	Timestamp    time.Time      `json:"timestamp"`
	Scores       scoring.Scores `json:"scores"`
}

// Series is the evolution of a patient's scores, oldest first. Points is
// empty unless Status is SeriesReady.
type Series struct {
	Status SeriesStatus `json:"status"`
	Points []DataPoint  `json:"points"`
}

func (s Series) Ready() bool { return s.Status == SeriesReady }

// MinSeriesPoints is the number of valid records needed to draw a trend.
const MinSeriesPoints = 2

// EvolutionSeries builds one point per valid record in ascending time order.
func EvolutionSeries(history []Record) Series {
	if len(history) < MinSeriesPoints {
		return Series{Status: SeriesNoHistory, Points: []DataPoint{}}
	}

	var valid []Record
	for i := range history {
		if history[i].Valid() {
			valid = append(valid, history[i])
		}
	}
	if len(valid) < MinSeriesPoints {
		return Series{Status: SeriesInsufficientValid, Points: []DataPoint{}}
	}

	valid = sortedBy(valid, func(a, b time.Time) bool { return a.Before(b) })
	points := make([]DataPoint, len(valid))
	for i, r := range valid {
		scores := make(scoring.Scores, len(catalog.Categories))
		for _, cat := range catalog.Categories {
			scores[cat] = r.Scores[cat]
		}
		points[i] = DataPoint{AssessmentID: r.ID.String(), Timestamp: r.CreatedAt, Scores: scores}
	}
	return Series{Status: SeriesReady, Points: points}
}

type ComparisonStatus string

const (
	ComparisonReady ComparisonStatus = "ready"
	// ComparisonCurrentInsufficient: no current record or it lacks scores.
	ComparisonCurrentInsufficient ComparisonStatus = "current_insufficient"
	// ComparisonNoPrior: the current record is the patient's first.
	ComparisonNoPrior ComparisonStatus = "no_prior"
	// ComparisonPriorIncomplete: a previous record exists but lacks scores.
	ComparisonPriorIncomplete ComparisonStatus = "prior_incomplete"
)

type Pair struct {
	Category catalog.Category `json:"category"`
	Current  int              `json:"current"`
	Previous int              `json:"previous"`
	Delta    int              `json:"delta"`
}

type Comparison struct {
	Status ComparisonStatus `json:"status"`
	Pairs  []Pair           `json:"pairs"`
}

func (c Comparison) Ready() bool { return c.Status == ComparisonReady }

// Compare pairs current and previous scores category by category.
func Compare(current, previous *Record) Comparison {
	switch {
	case !current.Valid():
		return Comparison{Status: ComparisonCurrentInsufficient, Pairs: []Pair{}}
	case previous == nil:
		return Comparison{Status: ComparisonNoPrior, Pairs: []Pair{}}
	case !previous.Valid():
		return Comparison{Status: ComparisonPriorIncomplete, Pairs: []Pair{}}
	}

	pairs := make([]Pair, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		cur, prev := current.Scores[cat], previous.Scores[cat]
		pairs = append(pairs, Pair{Category: cat, Current: cur, Previous: prev, Delta: cur - prev})
	}
	return Comparison{Status: ComparisonReady, Pairs: pairs}
}

func sortedBy(history []Record, less func(a, b time.Time) bool) []Record {
	out := append([]Record(nil), history...)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].CreatedAt, out[j].CreatedAt)
	})
	return out
}
