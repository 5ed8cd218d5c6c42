package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"nazaaralive/internal/domain"
)

const (
	regionCookieName   = "nz_region"
	regionCookieMaxAge = 30 * 24 * time.Hour
	regionLookupBudget = 800 * time.Millisecond
)

const regionKey contextKey = "region"

// RegionFromContext returns the visitor region code from the context, if present.
func RegionFromContext(ctx context.Context) (string, bool) {
	region, ok := ctx.Value(regionKey).(string)
	return region, ok
}

// Region returns a wrapper that attaches a region code to every request. A
// returning visitor is recognized by cookie; otherwise the client IP is
// resolved and the result set as a cookie. Lookup failures fall back to
// defaultRegion so the request never blocks on the geo API.
func Region(resolver domain.RegionResolver, defaultRegion string, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(regionCookieName); err == nil && c.Value != "" {
				r = r.WithContext(context.WithValue(r.Context(), regionKey, c.Value))
				next(w, r)
				return
			}

			region := defaultRegion
			ctx, cancel := context.WithTimeout(r.Context(), regionLookupBudget)
			resolved, err := resolver.Resolve(ctx, clientIP(r))
			cancel()
			if err != nil {
				logger.Debug("region lookup failed", "error", err)
			} else if resolved != "" {
				region = resolved
			}

			http.SetCookie(w, &http.Cookie{
				Name:     regionCookieName,
				Value:    region,
				Path:     "/",
				MaxAge:   int(regionCookieMaxAge.Seconds()),
				SameSite: http.SameSiteLaxMode,
			})
			r = r.WithContext(context.WithValue(r.Context(), regionKey, region))
			next(w, r)
		}
	}
}

// clientIP prefers the left-most X-Forwarded-For entry, then X-Real-IP,
// then the connection's remote address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}
	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		return rip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
