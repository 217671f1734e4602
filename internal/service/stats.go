package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayanaadylkhanova/pageviews/internal/entity"
	"github.com/dayanaadylkhanova/pageviews/pkg/pageviews"
	"go.uber.org/zap"
)

var ErrInvalidRequest = errors.New("invalid request")

type Stats struct {
	log     *zap.Logger
	client  PageviewsClient
	maxDays int
	now     func() time.Time
}

// NewStats builds the service. maxDays limits date ranges; 0 disables the check.
func NewStats(log *zap.Logger, client PageviewsClient, maxDays int) *Stats {
	return &Stats{log: log, client: client, maxDays: maxDays, now: time.Now}
}

// defaultRangeDays matches the client's default for a missing start.
const defaultRangeDays = 30

var (
	accesses = map[string]bool{
		"": true, string(pageviews.AllAccess): true, string(pageviews.Desktop): true,
		string(pageviews.MobileWeb): true, string(pageviews.MobileApp): true,
	}
	agents = map[string]bool{
		"": true, string(pageviews.AllAgents): true, string(pageviews.User): true,
		string(pageviews.Spider): true, string(pageviews.Bot): true, string(pageviews.Automated): true,
	}
	// per-article data only exists at daily and monthly resolution
	articleGranularities = map[string]bool{"": true, string(pageviews.Daily): true, string(pageviews.Monthly): true}
	projectGranularities = map[string]bool{
		"": true, string(pageviews.Hourly): true, string(pageviews.Daily): true, string(pageviews.Monthly): true,
	}
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

func (s *Stats) ArticleViews(ctx context.Context, req entity.ArticleViewsRequest) (*entity.ViewsResponse, error) {
	if req.Project == "" {
		return nil, invalid("project is required")
	}
	if len(req.Articles) == 0 {
		return nil, invalid("at least one article is required")
	}
	if err := s.checkFilters(req.Access, req.Agent); err != nil {
		return nil, err
	}
	if !articleGranularities[req.Granularity] {
		return nil, invalid("granularity %q", req.Granularity)
	}
	start, end, err := s.dateRange(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	start0 := time.Now()
	series, err := s.client.ArticleViews(ctx, pageviews.ArticleQuery{
		Project:     req.Project,
		Articles:    dedupe(req.Articles),
		Access:      pageviews.Access(req.Access),
		Agent:       pageviews.Agent(req.Agent),
		Granularity: pageviews.Granularity(req.Granularity),
		Start:       start,
		End:         end,
	})
	if err != nil {
		s.log.Warn("article views", zap.String("project", req.Project), zap.Int("articles", len(req.Articles)), zap.Error(err))
		return nil, err
	}
	s.log.Debug("article views",
		zap.String("project", req.Project),
		zap.Int("articles", len(req.Articles)),
		zap.Int("points", series.Len()),
		zap.Duration("latency", time.Since(start0)),
	)
	return &entity.ViewsResponse{Granularity: granularityOr(req.Granularity), Series: series}, nil
}

func (s *Stats) ProjectViews(ctx context.Context, req entity.ProjectViewsRequest) (*entity.ViewsResponse, error) {
	if len(req.Projects) == 0 {
		return nil, invalid("at least one project is required")
	}
	if err := s.checkFilters(req.Access, req.Agent); err != nil {
		return nil, err
	}
	if !projectGranularities[req.Granularity] {
		return nil, invalid("granularity %q", req.Granularity)
	}
	start, end, err := s.dateRange(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	start0 := time.Now()
	series, err := s.client.ProjectViews(ctx, pageviews.ProjectQuery{
		Projects:    dedupe(req.Projects),
		Access:      pageviews.Access(req.Access),
		Agent:       pageviews.Agent(req.Agent),
		Granularity: pageviews.Granularity(req.Granularity),
		Start:       start,
		End:         end,
	})
	if err != nil {
		s.log.Warn("project views", zap.Strings("projects", req.Projects), zap.Error(err))
		return nil, err
	}
	s.log.Debug("project views",
		zap.Strings("projects", req.Projects),
		zap.Int("points", series.Len()),
		zap.Duration("latency", time.Since(start0)),
	)
	return &entity.ViewsResponse{Granularity: granularityOr(req.Granularity), Series: series}, nil
}

func (s *Stats) TopArticles(ctx context.Context, req entity.TopArticlesRequest) (*entity.TopArticlesResponse, error) {
	if req.Project == "" {
		return nil, invalid("project is required")
	}
	if !accesses[req.Access] {
		return nil, invalid("access %q", req.Access)
	}
	if req.Year < 0 || req.Month < 0 || req.Month > 12 || req.Day < 0 || req.Day > 31 || req.Limit < 0 {
		return nil, invalid("year/month/day/limit out of range")
	}
	arts, err := s.client.TopArticles(ctx, pageviews.TopQuery{
		Project: req.Project,
		Access:  pageviews.Access(req.Access),
		Year:    req.Year,
		Month:   req.Month,
		Day:     req.Day,
		Limit:   req.Limit,
	})
	if err != nil {
		s.log.Warn("top articles", zap.String("project", req.Project), zap.Error(err))
		return nil, err
	}
	return &entity.TopArticlesResponse{Project: req.Project, Articles: arts}, nil
}

func (s *Stats) checkFilters(access, agent string) error {
	if !accesses[access] {
		return invalid("access %q", access)
	}
	if !agents[agent] {
		return invalid("agent %q", agent)
	}
	return nil
}

// dateRange parses the optional bounds and validates the range they give
// once defaults are applied. Unset bounds stay nil so the client applies the
// same defaults itself.
func (s *Stats) dateRange(startStr, endStr string) (pageviews.DateLike, pageviews.DateLike, error) {
	var start, end pageviews.DateLike
	var st, et time.Time
	var err error
	if endStr != "" {
		if et, err = pageviews.ParseDate(endStr); err != nil {
			return nil, nil, invalid("end: %v", err)
		}
		end = pageviews.DateString(endStr)
	} else {
		today := s.now()
		et = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	}
	if startStr != "" {
		if st, err = pageviews.ParseDate(startStr); err != nil {
			return nil, nil, invalid("start: %v", err)
		}
		start = pageviews.DateString(startStr)
	} else {
		st = et.AddDate(0, 0, -defaultRangeDays)
	}
	if !et.After(st) {
		return nil, nil, invalid("end must be after start")
	}
	if s.maxDays > 0 && et.Sub(st) > time.Duration(s.maxDays)*24*time.Hour {
		return nil, nil, invalid("range longer than %d days", s.maxDays)
	}
	return start, end, nil
}

func granularityOr(g string) string {
	if g == "" {
		return string(pageviews.Daily)
	}
	return g
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
