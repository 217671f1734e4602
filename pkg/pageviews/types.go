package pageviews

import (
	"strconv"

	"github.com/goccy/go-json"
)

type Access string

const (
	AllAccess Access = "all-access"
	Desktop   Access = "desktop"
	MobileWeb Access = "mobile-web"
	MobileApp Access = "mobile-app"
)

type Agent string

const (
	AllAgents Agent = "all-agents"
	User      Agent = "user"
	Spider    Agent = "spider"
	Bot       Agent = "bot"
	Automated Agent = "automated"
)

type Granularity string

const (
	Hourly  Granularity = "hourly"
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
)

// Increment returns the skeleton step for g.
func (g Granularity) Increment() (Increment, error) {
	switch g {
	case Hourly:
		return Increment{Hours: 1}, nil
	case Daily:
		return Increment{Days: 1}, nil
	case Monthly:
		return Increment{Months: 1}, nil
	}
	return Increment{}, ErrInvalidGranularity
}

// Views is a view count that may be missing. The zero value is Unknown.
type Views struct {
	Count int64
	Known bool
}

var Unknown = Views{}

func Known(n int64) Views { return Views{Count: n, Known: true} }

func (v Views) String() string {
	if !v.Known {
		return "unknown"
	}
	return strconv.FormatInt(v.Count, 10)
}

func (v Views) MarshalJSON() ([]byte, error) {
	if !v.Known {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, v.Count, 10), nil
}

func (v *Views) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Unknown
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = Known(n)
	return nil
}

type TopArticle struct {
	Rank    int    `json:"rank"`
	Article string `json:"article"`
	Views   int64  `json:"views"`
}

// itemsResponse is the body shared by the per-article and aggregate endpoints.
// Items is a pointer so that a missing array can be told apart from an empty one.
type itemsResponse struct {
	Items *[]viewItem `json:"items"`

	// problem document fields, set on API errors
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type viewItem struct {
	Project     string `json:"project"`
	Article     string `json:"article"`
	Granularity string `json:"granularity"`
	Timestamp   string `json:"timestamp"`
	Access      string `json:"access"`
	Agent       string `json:"agent"`
	Views       int64  `json:"views"`
}

type topResponse struct {
	Items []struct {
		Project  string       `json:"project"`
		Access   string       `json:"access"`
		Year     string       `json:"year"`
		Month    string       `json:"month"`
		Day      string       `json:"day"`
		Articles []TopArticle `json:"articles"`
	} `json:"items"`
}
