package http

import (
	"strings"

	"sportagency/internal/web"
)

// routePaths is the route table: symbol to path. The composition core only
// ever sees symbols; this is the single place paths live.
var routePaths = map[string]string{
	web.RouteIndex:     "/",
	web.RouteAthletes:  "/athletes",
	web.RouteDashboard: "/dashboard",
	web.RouteLogin:     "/auth/login",
	web.RouteLogout:    "/auth/logout",
	web.RouteRegister:  "/auth/register",
}

// NewResolver returns the RouteResolver backed by the route table. baseURL
// may be empty for relative links.
func NewResolver(baseURL string) web.RouteResolver {
	base := strings.TrimRight(baseURL, "/")
	return func(symbol string) (string, error) {
		path, ok := routePaths[symbol]
		if !ok {
			return "", web.UnresolvedRouteError{Symbol: symbol}
		}
		return base + path, nil
	}
}
