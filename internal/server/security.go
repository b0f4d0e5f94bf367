package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/enderryno/nuclearcraft-items/internal/handler"
	"github.com/enderryno/nuclearcraft-items/internal/logger"
)

// Limits bounds per-client traffic. Zero fields take the Default* constants.
type Limits struct {
	// Window is the period over which requests and failed auth attempts are counted
	Window time.Duration
	// MaxRequests is the per-client budget within one Window
	MaxRequests int
	// FailedAuthAlert is the failed attempt count at which a client is reported
	FailedAuthAlert int
	// MaxBodyBytes caps request bodies
	MaxBodyBytes int64
}

func (l Limits) withDefaults() Limits {
	if l.Window <= 0 {
		l.Window = DefaultRateLimitWindow
	}
	if l.MaxRequests <= 0 {
		l.MaxRequests = DefaultRateLimitMaxRequests
	}
	if l.FailedAuthAlert <= 0 {
		l.FailedAuthAlert = DefaultFailedAuthAlertCount
	}
	if l.MaxBodyBytes <= 0 {
		l.MaxBodyBytes = DefaultMaxRequestBodyBytes
	}
	return l
}

// clientTracker counts requests and failed auth attempts per client IP in
// fixed windows. All counters reset together when a window ends.
type clientTracker struct {
	limits Limits
	now    func() time.Time

	mu          sync.Mutex
	windowStart time.Time
	requests    map[string]int
	failedAuth  map[string]int
}

func newClientTracker(limits Limits) *clientTracker {
	return newClientTrackerWithClock(limits, time.Now)
}

func newClientTrackerWithClock(limits Limits, now func() time.Time) *clientTracker {
	return &clientTracker{
		limits:      limits.withDefaults(),
		now:         now,
		windowStart: now(),
		requests:    make(map[string]int),
		failedAuth:  make(map[string]int),
	}
}

// allow counts one request from ip. When the budget is spent it reports
// false and how long until the window resets.
func (c *clientTracker) allow(ip string) (bool, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.rollWindow()
	c.requests[ip]++
	count := c.requests[ip]
	if count <= c.limits.MaxRequests {
		return true, 0
	}

	if count%HighRateLogSampleRate == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false, c.windowStart.Add(c.limits.Window).Sub(now)
}

// recordFailedAuth counts a rejected API key and returns the count in this window
func (c *clientTracker) recordFailedAuth(ip string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rollWindow()
	c.failedAuth[ip]++
	count := c.failedAuth[ip]
	if count >= c.limits.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// rollWindow starts a new window if the current one has ended. Caller holds mu.
func (c *clientTracker) rollWindow() time.Time {
	now := c.now()
	if now.Sub(c.windowStart) >= c.limits.Window {
		clear(c.requests)
		clear(c.failedAuth)
		c.windowStart = now
	}
	return now
}

// proxySet holds the addresses allowed to report the client via X-Forwarded-For
type proxySet map[netip.Addr]struct{}

func newProxySet(addrs []string) proxySet {
	set := make(proxySet, len(addrs))
	for _, a := range addrs {
		if addr, err := netip.ParseAddr(strings.TrimSpace(a)); err == nil {
			set[addr.Unmap()] = struct{}{}
		}
	}
	return set
}

// clientIP returns the address of the peer, or the hop a trusted proxy
// reports in X-Forwarded-For. The rightmost entry is the one our proxy
// appended, so it is the only one taken.
func (p proxySet) clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	remote, err := netip.ParseAddr(host)
	if err != nil {
		return host
	}
	if _, trusted := p[remote.Unmap()]; !trusted {
		return remote.Unmap().String()
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote.Unmap().String()
	}
	hops := strings.Split(forwarded, ",")
	last := strings.TrimSpace(hops[len(hops)-1])
	hop, err := netip.ParseAddr(last)
	if err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgBadForwardedFor, "value", last)
		return remote.Unmap().String()
	}
	return hop.Unmap().String()
}

// matchesPath reports whether path equals one of paths or lies beneath it
func matchesPath(path string, paths []string) bool {
	for _, p := range paths {
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}

// authMiddleware requires the API key on every path outside public.
// An empty key leaves the API open.
func authMiddleware(apiKey string, public []string, proxies proxySet, tracker *clientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || matchesPath(r.URL.Path, public) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := proxies.clientIP(r)
				attempts := tracker.recordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip,
					"attempts", attempts)

				handler.RespondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitMiddleware rejects clients that spent their budget for the current window
func rateLimitMiddleware(proxies proxySet, tracker *clientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, retryAfter := tracker.allow(proxies.clientIP(r))
			if !ok {
				seconds := int(retryAfter.Round(time.Second) / time.Second)
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(max(seconds, 1)))
				handler.RespondError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware rejects bodies larger than maxBytes.
// A declared Content-Length over the limit is refused before the handler runs.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				handler.RespondError(w, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets headers suited to a JSON-only API
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderContentSecurity, HeaderValueNoContent)
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			next.ServeHTTP(w, r)
		})
	}
}
