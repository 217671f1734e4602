package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dayanaadylkhanova/pageviews/pkg/config"
	"go.uber.org/zap"
)

func testConfig(apiURL string) config.Config {
	return config.Config{
		ListenAddr:   "127.0.0.1:0",
		LogLevel:     "info",
		APIURL:       apiURL,
		Parallelism:  2,
		MaxRangeDays: 366,
		ShutdownWait: time.Second,
	}
}

func TestApp_ProjectViewsEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pageviews/aggregate/en.wikipedia/all-access/all-agents/daily/2023010100/2023010300" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"items":[{"project":"en.wikipedia","timestamp":"2023010200","views":321}]}`))
	}))
	defer upstream.Close()

	a, err := New(testConfig(upstream.URL+"/pageviews"), &AppInfo{Name: "test"}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects?project=en.wikipedia&start=20230101&end=20230103", nil)
	a.server.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	want := `{"granularity":"daily","series":[` +
		`{"timestamp":"2023010100","views":{"en.wikipedia":null}},` +
		`{"timestamp":"2023010200","views":{"en.wikipedia":321}}]}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestApp_UpstreamNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not found.","detail":"no data"}`))
	}))
	defer upstream.Close()

	a, err := New(testConfig(upstream.URL), &AppInfo{Name: "test"}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := httptest.NewRecorder()
	a.server.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/en.wikipedia?article=Nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 passthrough, got %d", rec.Code)
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	a, err := New(testConfig("http://localhost:1"), &AppInfo{Name: "test"}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, ErrAppShutdownNormal) {
			t.Fatalf("expected ErrAppShutdownNormal, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for Run to return")
	}
}
