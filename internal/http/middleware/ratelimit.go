package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// LoginThrottle caps sign-in attempts per account/client pair over a fixed
// window. Only the login form is throttled, so the bucket map stays small
// and is swept inline once per window.
type LoginThrottle struct {
	mu        sync.Mutex
	window    time.Duration
	limit     int
	attempts  map[string]attemptWindow
	nextSweep time.Time
}

type attemptWindow struct {
	count   int
	expires time.Time
}

func NewLoginThrottle(limit int, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginThrottle{
		window:   window,
		limit:    limit,
		attempts: make(map[string]attemptWindow),
	}
}

// Allow records one attempt against the username from the given client and
// reports whether it is still within the limit. Keying on the pair throttles
// a password-guessing loop against one account without locking the whole
// address out of other accounts behind a shared NAT.
func (lt *LoginThrottle) Allow(username, clientIP string) bool {
	if lt == nil {
		return true
	}
	key := strings.ToLower(username) + "@" + clientIP

	now := time.Now()
	lt.mu.Lock()
	defer lt.mu.Unlock()

	if now.After(lt.nextSweep) {
		for k, w := range lt.attempts {
			if now.After(w.expires) {
				delete(lt.attempts, k)
			}
		}
		lt.nextSweep = now.Add(lt.window)
	}

	w := lt.attempts[key]
	if now.After(w.expires) {
		w.count = 0
		w.expires = now.Add(lt.window)
	}
	if w.count >= lt.limit {
		lt.attempts[key] = w
		return false
	}
	w.count++
	lt.attempts[key] = w
	return true
}

// ClientIP returns the originating client address, trusting proxy headers
// when present.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		ip := strings.TrimSpace(parts[0])
		if ip != "" {
			return ip
		}
	}
	if xrip := strings.TrimSpace(r.Header.Get("X-Real-IP")); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
