package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"sportagency/internal/auth"
	"sportagency/internal/http/middleware"
	"sportagency/internal/notify"
	"sportagency/internal/session"
)

type AuthHandler struct {
	DB            *pgxpool.Pool
	Shell         *Shell
	Notifier      notify.Notifier
	LoginThrottle *middleware.LoginThrottle
}

func (h *AuthHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /auth/login", h.LoginPage)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/register", h.RegisterPage)
	mux.HandleFunc("POST /auth/register", h.Register)
}

type loginContent struct {
	Username string
}

type registerContent struct {
	Username    string
	DisplayName string
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	id := loadIdentity(r.Context(), h.DB, middleware.UserID(r))
	if id.LoggedIn {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.Shell.Render(w, r, id, pageSpec{Template: "login", Title: "Sign in"},
		loginContent{Username: strings.TrimSpace(r.URL.Query().Get("username"))})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		session.Enqueue(w, r, "error", "Could not read the sign-in form.")
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}
	username := strings.TrimSpace(r.Form.Get("username"))
	password := r.Form.Get("password")
	if username == "" || password == "" {
		session.Enqueue(w, r, "error", "Username and password are required.")
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}
	if !h.LoginThrottle.Allow(username, middleware.ClientIP(r)) {
		session.Enqueue(w, r, "error", "Too many sign-in attempts. Try again in a minute.")
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	var uid, displayName, passHash, role string
	err := h.DB.QueryRow(ctx,
		`select id, display_name, password_hash, role from users where username = $1`,
		username).Scan(&uid, &displayName, &passHash, &role)
	if err != nil || !auth.CheckPassword(password, passHash) {
		session.Enqueue(w, r, "error", "Invalid username or password.")
		http.Redirect(w, r, "/auth/login?username="+url.QueryEscape(username), http.StatusSeeOther)
		return
	}

	if msg, blocked := loginBarrier(role); blocked {
		session.Enqueue(w, r, "warning", msg)
		http.Redirect(w, r, "/auth/login?username="+url.QueryEscape(username), http.StatusSeeOther)
		return
	}

	token, err := auth.IssueToken(uid)
	if err != nil {
		session.Enqueue(w, r, "error", "Could not start a session. Please retry.")
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(72 * time.Hour),
	})
	session.Enqueue(w, r, "success", "Welcome back, "+displayName+"!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	session.Enqueue(w, r, "info", "You have been signed out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	id := loadIdentity(r.Context(), h.DB, middleware.UserID(r))
	if id.LoggedIn {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.Shell.Render(w, r, id, pageSpec{Template: "register", Title: "Register"}, registerContent{})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		session.Enqueue(w, r, "error", "Could not read the registration form.")
		http.Redirect(w, r, "/auth/register", http.StatusSeeOther)
		return
	}
	username := strings.TrimSpace(r.Form.Get("username"))
	displayName := strings.TrimSpace(r.Form.Get("display_name"))
	password := r.Form.Get("password")
	confirm := r.Form.Get("confirm_password")

	switch {
	case username == "" || displayName == "" || password == "":
		session.Enqueue(w, r, "error", "All fields are required.")
		http.Redirect(w, r, "/auth/register", http.StatusSeeOther)
		return
	case password != confirm:
		session.Enqueue(w, r, "error", "Passwords do not match.")
		http.Redirect(w, r, "/auth/register", http.StatusSeeOther)
		return
	case len(password) < 6:
		session.Enqueue(w, r, "error", "Password must be at least 6 characters.")
		http.Redirect(w, r, "/auth/register", http.StatusSeeOther)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		session.Enqueue(w, r, "error", "Registration failed. Please retry.")
		http.Redirect(w, r, "/auth/register", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err = h.DB.Exec(ctx, `
		insert into users (username, display_name, password_hash, role)
		values ($1, $2, $3, $4)
	`, username, displayName, hash, middleware.RoleUnverified)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			session.Enqueue(w, r, "error", "That username is already taken.")
		} else {
			session.Enqueue(w, r, "error", "Registration failed. Please retry.")
		}
		http.Redirect(w, r, "/auth/register", http.StatusSeeOther)
		return
	}

	if h.Notifier != nil {
		h.Notifier.NotifyAdmins(ctx, fmt.Sprintf("New account requested: %s (%s)", username, displayName))
	}

	session.Enqueue(w, r, "success", "Account created. You can sign in once it is approved.")
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

// loginBarrier reports whether an account's role bars it from signing in,
// with the flash message to show. New registrations stay unverified until a
// moderator promotes them.
func loginBarrier(role string) (string, bool) {
	if role == middleware.RoleUnverified {
		return "Your account is awaiting approval.", true
	}
	return "", false
}
