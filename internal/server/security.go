package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/potioncraft/internal/logger"
)

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires the X-API-Key header to match apiKey on every
// non-public path. Failures are reported to tracker.
func AuthMiddleware(apiKey string, trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				tracker.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ClientTracker counts requests and failed logins per client IP over a fixed window
type ClientTracker struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	now         func() time.Time
	windowStart time.Time
	requests    map[string]int
	failedAuth  map[string]int
}

// NewClientTracker allows limit requests per window and client. A limit of 0 disables limiting.
func NewClientTracker(limit int, window time.Duration) *ClientTracker {
	if window <= 0 {
		window = DefaultRateWindow
	}
	t := &ClientTracker{
		limit:      limit,
		window:     window,
		now:        time.Now,
		requests:   make(map[string]int),
		failedAuth: make(map[string]int),
	}
	t.windowStart = t.now()
	return t
}

// RecordFailedAuth counts a failed authentication and alerts once the threshold is reached
func (t *ClientTracker) RecordFailedAuth(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollWindow()
	t.failedAuth[ip]++
	if t.failedAuth[ip] == FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", t.failedAuth[ip])
	}
}

// Allow counts a request from ip and reports whether it is within the limit.
// When it is not, the second value is how long until the window resets.
func (t *ClientTracker) Allow(ip string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollWindow()
	if t.limit <= 0 {
		return true, 0
	}

	t.requests[ip]++
	count := t.requests[ip]
	if count <= t.limit {
		return true, 0
	}
	if count == t.limit+1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "limit", t.limit, "window", t.window)
	}
	return false, t.windowStart.Add(t.window).Sub(t.now())
}

// rollWindow starts a new window once the current one has passed. Caller holds mu.
func (t *ClientTracker) rollWindow() {
	now := t.now()
	if now.Sub(t.windowStart) < t.window {
		return
	}
	t.windowStart = now
	clear(t.requests)
	clear(t.failedAuth)
}

// RateLimitMiddleware rejects clients that exceed the tracker's limit with 429
func RateLimitMiddleware(trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ok, retryAfter := tracker.Allow(extractIP(r, trustedProxies))
			if !ok {
				seconds := int(retryAfter.Round(time.Second) / time.Second)
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(seconds))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is only honoured when
// the direct peer is a trusted proxy, and then its rightmost entry is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			// Craft results change on every call
			h.Set(HeaderCacheControl, HeaderValueNoStore)

			next.ServeHTTP(w, r)
		})
	}
}
