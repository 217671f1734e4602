package pageviews

import (
	"time"

	"github.com/goccy/go-json"
)

type Point struct {
	Timestamp time.Time
	Views     map[string]Views
}

// TimeSeries maps timestamps to per-entity view counts, ordered by time.
type TimeSeries struct {
	points []Point
	index  map[time.Time]int
}

// newSkeleton builds a series with one point per timestamp in [start, end),
// every entity set to Unknown.
func newSkeleton(start, end time.Time, inc Increment, entities []string) *TimeSeries {
	ts := &TimeSeries{index: make(map[time.Time]int)}
	for t := range TimestampsBetween(start, end, inc) {
		if _, dup := ts.index[t]; dup {
			continue
		}
		views := make(map[string]Views, len(entities))
		for _, e := range entities {
			views[e] = Unknown
		}
		ts.index[t] = len(ts.points)
		ts.points = append(ts.points, Point{Timestamp: t, Views: views})
	}
	return ts
}

// set overwrites the count of an existing (timestamp, entity) pair and
// reports whether the pair was part of the skeleton.
func (ts *TimeSeries) set(t time.Time, entity string, n int64) bool {
	i, ok := ts.index[t]
	if !ok {
		return false
	}
	if _, ok := ts.points[i].Views[entity]; !ok {
		return false
	}
	ts.points[i].Views[entity] = Known(n)
	return true
}

func (ts *TimeSeries) Len() int { return len(ts.points) }

// Points returns the series in time order. The slice is shared.
func (ts *TimeSeries) Points() []Point { return ts.points }

func (ts *TimeSeries) Timestamps() []time.Time {
	out := make([]time.Time, len(ts.points))
	for i, p := range ts.points {
		out[i] = p.Timestamp
	}
	return out
}

// At returns the counts at t, if t is in the series.
func (ts *TimeSeries) At(t time.Time) (map[string]Views, bool) {
	i, ok := ts.index[t]
	if !ok {
		return nil, false
	}
	return ts.points[i].Views, true
}

// Get returns one count. Pairs outside the series are Unknown.
func (ts *TimeSeries) Get(t time.Time, entity string) Views {
	m, ok := ts.At(t)
	if !ok {
		return Unknown
	}
	return m[entity]
}

type pointJSON struct {
	Timestamp string           `json:"timestamp"`
	Views     map[string]Views `json:"views"`
}

func (ts *TimeSeries) MarshalJSON() ([]byte, error) {
	out := make([]pointJSON, len(ts.points))
	for i, p := range ts.points {
		out[i] = pointJSON{Timestamp: FormatDate(p.Timestamp), Views: p.Views}
	}
	return json.Marshal(out)
}

func (ts *TimeSeries) UnmarshalJSON(b []byte) error {
	var in []pointJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	ts.points = make([]Point, 0, len(in))
	ts.index = make(map[time.Time]int, len(in))
	for _, p := range in {
		t, err := ParseDate(p.Timestamp)
		if err != nil {
			return err
		}
		ts.index[t] = len(ts.points)
		ts.points = append(ts.points, Point{Timestamp: t, Views: p.Views})
	}
	return nil
}
