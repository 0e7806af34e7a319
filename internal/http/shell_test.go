package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportagency/internal/session"
	"sportagency/internal/web"
)

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	shell, err := NewShell("Sport Agency", NewResolver(""))
	require.NoError(t, err)
	return shell
}

func TestShellRender_AnonymousPage(t *testing.T) {
	shell := newTestShell(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	shell.Render(rec, req, web.Identity{}, pageSpec{Template: "login", Title: "Sign in"}, loginContent{})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Sign in - Sport Agency</title>")
	assert.Contains(t, body, ">Login</a>")
	assert.Contains(t, body, ">Register</a>")
	assert.NotContains(t, body, ">Logout</a>")
	assert.NotContains(t, body, "flash-area")
}

func TestShellRender_ConsumesPendingFlashes(t *testing.T) {
	shell := newTestShell(t)

	// An action queued a message; the next page view must show it once.
	enq := httptest.NewRecorder()
	session.Enqueue(enq, httptest.NewRequest(http.MethodPost, "/auth/login", nil), "error", "Invalid username or password.")

	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	for _, c := range enq.Result().Cookies() {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	rec := httptest.NewRecorder()
	shell.Render(rec, req, web.Identity{}, pageSpec{Template: "login", Title: "Sign in"}, loginContent{})

	body := rec.Body.String()
	assert.Contains(t, body, `class="flash flash-danger"`)
	assert.Contains(t, body, "Invalid username or password.")

	// The queue is cleared with the same response.
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestShellRender_AuthenticatedNav(t *testing.T) {
	shell := newTestShell(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	id := web.Identity{LoggedIn: true, Username: "alice", DisplayName: "Alice Agent", Role: "user"}
	shell.Render(rec, req, id, pageSpec{Template: "dashboard", Title: "Dashboard"}, dashboardContent{RosterCount: 3})

	body := rec.Body.String()
	assert.Contains(t, body, ">Dashboard</a>")
	assert.Contains(t, body, ">Logout</a>")
	assert.NotContains(t, body, ">Login</a>")
	assert.Contains(t, body, "Alice Agent")
}

func TestShellRender_UnresolvedRouteIs500(t *testing.T) {
	broken := func(symbol string) (string, error) {
		if symbol == web.RouteLogout {
			return "", web.UnresolvedRouteError{Symbol: symbol}
		}
		return "/x", nil
	}
	r, err := web.NewRenderer()
	require.NoError(t, err)
	shell := &Shell{
		siteName: "Sport Agency",
		composer: web.NewComposer("Sport Agency", r),
		renderer: r,
		resolve:  broken,
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	shell.Render(rec, req, web.Identity{LoggedIn: true}, pageSpec{Template: "dashboard"}, dashboardContent{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "topnav")
}
