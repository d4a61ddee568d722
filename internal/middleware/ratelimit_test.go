package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-query-api/internal/config"
)

func TestTokenBucketBlocksAfterCapacity(t *testing.T) {
	_, rdb := newTestRedis(t)
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            2 * time.Hour,
		KeyStrategy:    "ip",
		Prefix:         "rl-test",
	}
	e := echo.New()
	e.Use(NewTokenBucket(cfg, rdb))
	e.GET("/movies", func(c echo.Context) error { return c.JSON(http.StatusOK, []string{}) })

	for i := 0; i < 2; i++ {
		rec := get(e, "/movies")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
	rec := get(e, "/movies")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" || rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("missing rate limit headers: %v", rec.Header())
	}
}

func TestTokenBucketFailsOpenWithoutRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second, TTL: time.Minute, Prefix: "rl"}
	e := echo.New()
	e.Use(NewTokenBucket(cfg, rdb))
	e.GET("/movies", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	for i := 0; i < 3; i++ {
		if rec := get(e, "/movies"); rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 when redis is down", rec.Code)
		}
	}
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movies/7", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/movies/:id")

	tests := map[string]string{
		"ip":       "rl:ip:192.0.2.1",
		"route":    "rl:route:GET /movies/:id",
		"ip_route": "rl:ip:192.0.2.1:route:GET /movies/:id",
	}
	for strategy, want := range tests {
		cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: strategy}
		if got := buildRateKey(cfg, c); got != want {
			t.Errorf("%s: got %q, want %q", strategy, got, want)
		}
	}
}
