package entity

import "github.com/dayanaadylkhanova/pageviews/pkg/pageviews"

// ArticleViewsRequest is parsed from GET /articles/{project}. Dates are
// YYYYMMDD or YYYYMMDDHH; empty means default.
type ArticleViewsRequest struct {
	Project     string
	Articles    []string
	Access      string
	Agent       string
	Granularity string
	Start       string
	End         string
}

type ProjectViewsRequest struct {
	Projects    []string
	Access      string
	Agent       string
	Granularity string
	Start       string
	End         string
}

type TopArticlesRequest struct {
	Project string
	Access  string
	Year    int
	Month   int
	Day     int
	Limit   int
}

type ViewsResponse struct {
	Granularity string                `json:"granularity"`
	Series      *pageviews.TimeSeries `json:"series"`
}

type TopArticlesResponse struct {
	Project  string                 `json:"project"`
	Articles []pageviews.TopArticle `json:"articles"`
}
