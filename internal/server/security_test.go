package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getFrom(path, remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestRouter_PublicPathsSkipAuth(t *testing.T) {
	router := NewRouter(newTestOptions(t, "secret-key"))

	tests := []struct {
		name       string
		path       string
		key        string
		wantStatus int
	}{
		{"healthz", PathHealthz, "", http.StatusOK},
		{"readyz", PathReadyz, "", http.StatusOK},
		{"version", PathVersion, "", http.StatusOK},
		{"metrics", PathMetrics, "", http.StatusOK},
		{"lookalike of a public path", "/versions", "", http.StatusUnauthorized},
		{"item list without key", "/api/v1/items", "", http.StatusUnauthorized},
		{"item with wrong key", "/api/v1/items/1", "wrong-key", http.StatusUnauthorized},
		{"item with key", "/api/v1/items/1", "secret-key", http.StatusOK},
		{"resolve with key", "/api/v1/items/resolve?q=filter", "secret-key", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := serve(router, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestRouter_PublicPathsFromOptions(t *testing.T) {
	opts := newTestOptions(t, "secret-key")
	opts.PublicPaths = []string{PathHealthz}
	router := NewRouter(opts)

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, PathHealthz, nil)).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, httptest.NewRequest(http.MethodGet, PathVersion, nil)).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, httptest.NewRequest(http.MethodGet, PathMetrics, nil)).Code)
}

func TestRouter_RateLimit(t *testing.T) {
	opts := newTestOptions(t, "")
	opts.Limits = Limits{Window: time.Minute, MaxRequests: 3}
	router := NewRouter(opts)

	for i := 0; i < 3; i++ {
		rec := serve(router, getFrom("/api/v1/items/1", "192.0.2.10:4000"))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}

	rec := serve(router, getFrom("/api/v1/items/1", "192.0.2.10:4001"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"Too Many Requests"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	retryAfter, err := strconv.Atoi(rec.Header().Get(HeaderRetryAfter))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retryAfter, 1)
	assert.LessOrEqual(t, retryAfter, 60)

	other := serve(router, getFrom("/api/v1/items/1", "198.51.100.5:4000"))
	assert.Equal(t, http.StatusOK, other.Code, "budgets are per client")
}

func TestRouter_FailedAuthSpendsBudget(t *testing.T) {
	opts := newTestOptions(t, "secret-key")
	opts.Limits = Limits{Window: time.Minute, MaxRequests: 2}
	router := NewRouter(opts)

	for i := 0; i < 2; i++ {
		req := getFrom("/api/v1/items", "192.0.2.20:5000")
		req.Header.Set(HeaderAPIKey, "guess")
		assert.Equal(t, http.StatusUnauthorized, serve(router, req).Code)
	}

	req := getFrom("/api/v1/items", "192.0.2.20:5000")
	req.Header.Set(HeaderAPIKey, "secret-key")
	assert.Equal(t, http.StatusTooManyRequests, serve(router, req).Code)
}

func TestRouter_RateLimitsForwardedClient(t *testing.T) {
	opts := newTestOptions(t, "")
	opts.TrustedProxies = []string{"10.0.0.1"}
	opts.Limits = Limits{Window: time.Minute, MaxRequests: 1}
	router := NewRouter(opts)

	viaProxy := func(client string) int {
		req := getFrom("/api/v1/items", "10.0.0.1:8443")
		req.Header.Set(HeaderForwardedFor, client)
		return serve(router, req).Code
	}

	assert.Equal(t, http.StatusOK, viaProxy("203.0.113.7"))
	assert.Equal(t, http.StatusOK, viaProxy("203.0.113.8"))
	assert.Equal(t, http.StatusTooManyRequests, viaProxy("198.51.100.1, 203.0.113.7"))
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router := NewRouter(newTestOptions(t, "secret-key"))

	for _, path := range []string{PathHealthz, "/api/v1/items/1", "/api/v1/unknown"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
			assert.Equal(t, HeaderValueDeny, rec.Header().Get(HeaderFrameOptions))
			assert.Equal(t, HeaderValueNoContent, rec.Header().Get(HeaderContentSecurity))
			assert.Equal(t, HeaderValueNoReferrer, rec.Header().Get(HeaderReferrerPolicy))
		})
	}
}

func TestClientTracker_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tracker := newClientTrackerWithClock(Limits{Window: time.Minute, MaxRequests: 1, FailedAuthAlert: 3},
		func() time.Time { return now })

	ok, _ := tracker.allow("192.0.2.1")
	assert.True(t, ok)
	assert.Equal(t, 1, tracker.recordFailedAuth("192.0.2.1"))

	now = now.Add(20 * time.Second)
	ok, retryAfter := tracker.allow("192.0.2.1")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, retryAfter)
	assert.Equal(t, 2, tracker.recordFailedAuth("192.0.2.1"))

	now = now.Add(40 * time.Second)
	ok, _ = tracker.allow("192.0.2.1")
	assert.True(t, ok, "a new window starts with a fresh budget")
	assert.Equal(t, 1, tracker.recordFailedAuth("192.0.2.1"))
}

func TestLimits_Defaults(t *testing.T) {
	got := Limits{MaxRequests: 10}.withDefaults()
	assert.Equal(t, 10, got.MaxRequests)
	assert.Equal(t, DefaultRateLimitWindow, got.Window)
	assert.Equal(t, DefaultFailedAuthAlertCount, got.FailedAuthAlert)
	assert.Equal(t, int64(DefaultMaxRequestBodyBytes), got.MaxBodyBytes)
}

func TestProxySet_ClientIP(t *testing.T) {
	proxies := newProxySet([]string{"10.0.0.1", " 2001:db8::1 ", "not-an-ip"})

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"untrusted peer ignores header", "192.0.2.50:1000", "203.0.113.7", "192.0.2.50"},
		{"trusted peer takes rightmost hop", "10.0.0.1:1000", "203.0.113.7, 198.51.100.2", "198.51.100.2"},
		{"trusted peer without header", "10.0.0.1:1000", "", "10.0.0.1"},
		{"malformed hop falls back to peer", "10.0.0.1:1000", "203.0.113.7, garbage", "10.0.0.1"},
		{"mapped ipv4 peer is trusted", "[::ffff:10.0.0.1]:1000", "203.0.113.9", "203.0.113.9"},
		{"ipv6 proxy", "[2001:db8::1]:443", "2001:db8::99", "2001:db8::99"},
		{"peer without port", "192.0.2.51", "", "192.0.2.51"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := getFrom("/", tt.remoteAddr)
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, proxies.clientIP(req))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("declared length over limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(make([]byte, 16)))
		rec := serve(h, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.JSONEq(t, `{"error":"Request body too large"}`, rec.Body.String())
	})

	t.Run("undeclared length is cut off while reading", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(bytes.NewReader(make([]byte, 16))))
		req.ContentLength = -1
		serve(h, req)
		var maxErr *http.MaxBytesError
		assert.ErrorAs(t, readErr, &maxErr)
	})

	t.Run("within limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("ok")))
		rec := serve(h, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NoError(t, readErr)
	})
}
