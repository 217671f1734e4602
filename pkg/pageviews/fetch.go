package pageviews

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// getRaw performs a GET and returns the body whatever the status, since the
// API answers errors with JSON problem documents. Bodies that are not JSON
// are an error.
func (c *Client) getRaw(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "http.NewRequest")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "http.Get %s", url)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrapf(err, "read body %s", url)
	}
	if !json.Valid(body) {
		return nil, resp.StatusCode, errors.Errorf("decode %s (status %d): body is not JSON", url, resp.StatusCode)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) (int, error) {
	body, status, err := c.getRaw(ctx, url)
	if err != nil {
		return status, err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return status, errors.Wrapf(err, "decode %s (status %d)", url, status)
	}
	return status, nil
}

// getItems fetches one batch URL and requires an items array in the answer.
func (c *Client) getItems(ctx context.Context, url string) ([]viewItem, error) {
	var r itemsResponse
	status, err := c.getJSON(ctx, url, &r)
	if err != nil {
		return nil, err
	}
	if r.Items == nil {
		return nil, &APIError{URL: url, Status: status, Type: r.Type, Title: r.Title, Detail: r.Detail}
	}
	return *r.Items, nil
}

// getConcurrent fetches every url with at most c.parallelism requests in
// flight. Results keep the order of urls. The first failure cancels the rest
// and is returned once all workers are done.
func (c *Client) getConcurrent(ctx context.Context, endpoint string, urls []string) ([][]viewItem, error) {
	start := time.Now()
	results := make([][]viewItem, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)
	for i, u := range urls {
		g.Go(func() error {
			items, err := c.getItems(gctx, u)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.log.Warn("batch failed",
			zap.String("endpoint", endpoint),
			zap.Int("urls", len(urls)),
			zap.Error(err),
		)
		return nil, err
	}
	c.log.Debug("batch done",
		zap.String("endpoint", endpoint),
		zap.Int("urls", len(urls)),
		zap.Int("parallelism", c.parallelism),
		zap.Duration("latency", time.Since(start)),
	)
	return results, nil
}
