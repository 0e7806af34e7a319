package web

import "fmt"

// AuthState is the per-render authentication fact. It is supplied by the
// request middleware; this package never inspects credentials.
type AuthState int

const (
	Anonymous AuthState = iota
	Authenticated
)

func (s AuthState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Route symbols the navigation consumes. The resolver collaborator maps
// them to concrete URLs.
const (
	RouteIndex     = "main.index"
	RouteAthletes  = "athletes.index"
	RouteDashboard = "main.dashboard"
	RouteLogin     = "auth.login"
	RouteLogout    = "auth.logout"
	RouteRegister  = "auth.register"
)

// RouteResolver turns a route symbol into a URL. Implementations fail with
// UnresolvedRouteError for symbols they do not know.
type RouteResolver func(symbol string) (string, error)

// UnresolvedRouteError reports a route symbol the resolver could not map.
type UnresolvedRouteError struct {
	Symbol string
}

func (e UnresolvedRouteError) Error() string {
	return fmt.Sprintf("web: no route for symbol %q", e.Symbol)
}

// NavEntry is one navigation link: a label plus its resolved target.
type NavEntry struct {
	Label string
	URL   string
}

var (
	anonEntries = []struct{ label, symbol string }{
		{"Athletes", RouteAthletes},
		{"Login", RouteLogin},
		{"Register", RouteRegister},
	}
	authEntries = []struct{ label, symbol string }{
		{"Athletes", RouteAthletes},
		{"Dashboard", RouteDashboard},
		{"Logout", RouteLogout},
	}
)

// Navigation resolves the link set for the given auth state. Symbols are
// resolved on every call; routes and auth state may differ between requests.
// If any symbol fails to resolve the whole navigation fails: a partial link
// set would misrepresent the actions available to the user.
func Navigation(state AuthState, resolve RouteResolver) ([]NavEntry, error) {
	src := anonEntries
	if state == Authenticated {
		src = authEntries
	}
	entries := make([]NavEntry, 0, len(src))
	for _, e := range src {
		url, err := resolve(e.symbol)
		if err != nil {
			return nil, err
		}
		entries = append(entries, NavEntry{Label: e.label, URL: url})
	}
	return entries, nil
}
