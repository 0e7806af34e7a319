package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sportagency/internal/http/middleware"
	"sportagency/internal/logging"
	"sportagency/internal/notify"
	"sportagency/resources"
)

// Options carries what the mux needs from configuration.
type Options struct {
	SiteName string
	BaseURL  string
	Notifier notify.Notifier
}

func NewMux(db *pgxpool.Pool, opts Options) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	if opts.Notifier == nil {
		opts.Notifier = notify.Noop{}
	}

	resolve := NewResolver(opts.BaseURL)
	shell, err := NewShell(opts.SiteName, resolve)
	if err != nil {
		return nil, err
	}

	mux.Handle("GET /{$}", &HomeHandler{DB: db, Shell: shell})
	mux.Handle("GET /athletes", &AthletesHandler{DB: db, Shell: shell})
	mux.Handle("GET /dashboard", middleware.RequireAuth(&DashboardHandler{DB: db, Shell: shell}))

	ah := &AuthHandler{
		DB:            db,
		Shell:         shell,
		Notifier:      opts.Notifier,
		LoginThrottle: middleware.NewLoginThrottle(10, time.Minute),
	}
	ah.Routes(mux)

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(resources.Static())))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	return mux, nil
}

func WithStandardMiddleware(next http.Handler) http.Handler {
	return requestLogger(securityHeaders(middleware.WithAuth(next)))
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &wrapWriter{ResponseWriter: w, status: 200}
		l := slog.Default().With("method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(ww, r.WithContext(logging.WithLogger(r.Context(), l)))
		slog.Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type wrapWriter struct {
	http.ResponseWriter
	status int
}

func (w *wrapWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
