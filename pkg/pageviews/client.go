// Package pageviews is a client for the Wikimedia pageview statistics API.
//
// Batch calls (ArticleViews, ProjectViews) fan out one request per entity
// over a bounded pool and return a TimeSeries that has a point for every
// expected timestamp and entity; counts the API did not return stay Unknown.
package pageviews

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultParallelism = 10
	DefaultTopLimit    = 1000
)

type Client struct {
	endpoints   Endpoints
	parallelism int
	http        *http.Client
	log         *zap.Logger
	now         func() time.Time
	userAgent   string
}

type Option func(*Client)

// WithParallelism caps the number of requests in flight per batch.
func WithParallelism(n int) Option {
	return func(c *Client) {
		if n < 1 {
			n = 1
		}
		c.parallelism = n
	}
}

func WithEndpoints(e Endpoints) Option { return func(c *Client) { c.endpoints = e } }

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock sets the source of "today" for default dates.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func WithUserAgent(ua string) Option { return func(c *Client) { c.userAgent = ua } }

func New(opts ...Option) *Client {
	c := &Client{
		endpoints:   DefaultEndpoints(),
		parallelism: DefaultParallelism,
		http:        http.DefaultClient,
		log:         zap.NewNop(),
		now:         time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Parallelism() int { return c.parallelism }

type ArticleQuery struct {
	Project     string
	Articles    []string
	Access      Access
	Agent       Agent
	Granularity Granularity
	Start       DateLike
	End         DateLike
}

type ProjectQuery struct {
	Projects    []string
	Access      Access
	Agent       Agent
	Granularity Granularity
	// With Monthly granularity the API stamps buckets with the 1st of the
	// month, so the series starts at the first month start not before Start.
	Start DateLike
	End   DateLike
}

type TopQuery struct {
	Project string
	Access  Access
	Year    int
	Month   int
	Day     int
	Limit   int
}

// ArticleViews returns daily view counts for each article of a project.
func (c *Client) ArticleViews(ctx context.Context, q ArticleQuery) (*TimeSeries, error) {
	access, agent, gran := withDefaults(q.Access, q.Agent, q.Granularity)
	start, end, err := resolveRange(q.Start, q.End, c.now())
	if err != nil {
		return nil, err
	}

	// "Foo bar" and "Foo_bar" are one page: fetch it once, fill both names.
	urls := make([]string, 0, len(q.Articles))
	byTitle := make(map[string][]string, len(q.Articles))
	for _, a := range q.Articles {
		title := apiTitle(a)
		if _, seen := byTitle[title]; !seen {
			urls = append(urls, join(c.endpoints.Article, q.Project, string(access), string(agent), title, string(gran),
				FormatDate(start), FormatDate(end)))
		}
		byTitle[title] = append(byTitle[title], a)
	}
	results, err := c.getConcurrent(ctx, "article", urls)
	if err != nil {
		return nil, err
	}

	out := newSkeleton(start, end, Increment{Days: 1}, q.Articles)
	for _, items := range results {
		for _, it := range items {
			for _, name := range byTitle[it.Article] {
				c.overlay(out, it, name)
			}
		}
	}
	return out, nil
}

// ProjectViews returns aggregate view counts for each project. The skeleton
// steps by hour, day or calendar month depending on the granularity. Monthly
// points are the 1st of each month in [start, end), so a start in mid-month
// begins at the following month.
func (c *Client) ProjectViews(ctx context.Context, q ProjectQuery) (*TimeSeries, error) {
	access, agent, gran := withDefaults(q.Access, q.Agent, q.Granularity)
	inc, err := gran.Increment()
	if err != nil {
		return nil, errors.Wrapf(err, "%q", gran)
	}
	start, end, err := resolveRange(q.Start, q.End, c.now())
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(q.Projects))
	for i, p := range q.Projects {
		urls[i] = join(c.endpoints.Project, p, string(access), string(agent), string(gran),
			FormatDate(start), FormatDate(end))
	}
	results, err := c.getConcurrent(ctx, "project", urls)
	if err != nil {
		return nil, err
	}

	// monthly buckets are stamped with the 1st of the month
	skelStart := start
	if gran == Monthly {
		skelStart = monthStartOnOrAfter(start)
	}
	out := newSkeleton(skelStart, end, inc, q.Projects)
	for _, items := range results {
		for _, it := range items {
			c.overlay(out, it, it.Project)
		}
	}
	return out, nil
}

func (c *Client) overlay(ts *TimeSeries, it viewItem, entity string) {
	t, err := ParseDate(it.Timestamp)
	if err != nil {
		c.log.Debug("skip item", zap.String("timestamp", it.Timestamp), zap.Error(err))
		return
	}
	if !ts.set(t, entity, it.Views) {
		c.log.Debug("item outside skeleton", zap.String("entity", entity), zap.String("timestamp", it.Timestamp))
	}
}

// TopArticles returns the most viewed articles of a project on one day,
// sorted by rank. Answers that do not hold exactly one item give an empty list.
func (c *Client) TopArticles(ctx context.Context, q TopQuery) ([]TopArticle, error) {
	access := q.Access
	if access == "" {
		access = AllAccess
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	today := c.now()
	year, month, day := q.Year, q.Month, q.Day
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}
	if day == 0 {
		day = today.Day()
	}

	u := join(c.endpoints.Top, q.Project, string(access),
		strconv.Itoa(year), pad2(month), pad2(day))
	body, _, err := c.getRaw(ctx, u)
	if err != nil {
		return nil, err
	}
	var r topResponse
	if err := json.Unmarshal(body, &r); err != nil {
		c.log.Debug("unexpected top articles shape", zap.String("url", u), zap.Error(err))
		return []TopArticle{}, nil
	}
	if len(r.Items) != 1 {
		return []TopArticle{}, nil
	}
	arts := append([]TopArticle(nil), r.Items[0].Articles...)
	sort.SliceStable(arts, func(i, j int) bool { return arts[i].Rank < arts[j].Rank })
	if len(arts) > limit {
		arts = arts[:limit]
	}
	if arts == nil {
		arts = []TopArticle{}
	}
	return arts, nil
}

func withDefaults(access Access, agent Agent, gran Granularity) (Access, Agent, Granularity) {
	if access == "" {
		access = AllAccess
	}
	if agent == "" {
		agent = AllAgents
	}
	if gran == "" {
		gran = Daily
	}
	return access, agent, gran
}

// apiTitle converts a page title to the form the API uses in paths and items.
func apiTitle(s string) string { return strings.ReplaceAll(s, " ", "_") }

func join(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func pad2(n int) string {
	if n < 10 && n >= 0 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
