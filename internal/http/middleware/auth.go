package middleware

import (
	"context"
	"net/http"

	"sportagency/internal/auth"
)

type ctxKey string

const CtxUserID ctxKey = "user_id"

// WithAuth reads the session cookie and, if the token verifies, attaches
// the user id to the request context. Anonymous requests pass through
// untouched; the page shell renders its anonymous navigation for them.
func WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session")
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		if uid, err := auth.ParseToken(c.Value); err == nil && uid != "" {
			ctx := context.WithValue(r.Context(), CtxUserID, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects anonymous requests to the login page. Used for the
// dashboard and anything else that only makes sense signed in.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid := UserID(r); uid != "" {
			next.ServeHTTP(w, r)
			return
		}
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
	})
}

func UserID(r *http.Request) string {
	if v, ok := r.Context().Value(CtxUserID).(string); ok {
		return v
	}
	return ""
}
