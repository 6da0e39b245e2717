package middleware

import (
	"net"
	"net/http"
	"time"

	"opsdash/internal/common"
	"opsdash/internal/http/response"
)

// Limiter throttles the credential and OTP endpoints. Keys are
// caller-defined (typically "login:ip:<addr>" or "otp:ip:<addr>").
type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

// RateLimit throttles by client address within a fixed window. The prefix
// keeps login and OTP budgets separate for the same caller.
func RateLimit(l Limiter, prefix string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := prefix + ":ip:" + ClientIP(r)
			if !l.Allow(key, limit, window) {
				response.Error(w, common.NewError(common.CodeRateLimited, "Too many attempts. Please wait and try again.", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP prefers the proxy-forwarded address, falling back to the socket
// peer.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
