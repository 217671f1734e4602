package service

import (
	"context"

	"github.com/dayanaadylkhanova/pageviews/internal/entity"
	"github.com/dayanaadylkhanova/pageviews/pkg/pageviews"
)

//go:generate mockgen -source=contracts.go -destination=mock_contracts.go -package=service

// StatsPort is what the HTTP transport calls.
type StatsPort interface {
	ArticleViews(ctx context.Context, req entity.ArticleViewsRequest) (*entity.ViewsResponse, error)
	ProjectViews(ctx context.Context, req entity.ProjectViewsRequest) (*entity.ViewsResponse, error)
	TopArticles(ctx context.Context, req entity.TopArticlesRequest) (*entity.TopArticlesResponse, error)
}

// PageviewsClient is the upstream API, implemented by *pageviews.Client.
type PageviewsClient interface {
	ArticleViews(ctx context.Context, q pageviews.ArticleQuery) (*pageviews.TimeSeries, error)
	ProjectViews(ctx context.Context, q pageviews.ProjectQuery) (*pageviews.TimeSeries, error)
	TopArticles(ctx context.Context, q pageviews.TopQuery) ([]pageviews.TopArticle, error)
}
