package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportagency/internal/web"
)

func TestNewResolver_AllSymbols(t *testing.T) {
	resolve := NewResolver("")
	for _, symbol := range []string{
		web.RouteIndex, web.RouteAthletes, web.RouteDashboard,
		web.RouteLogin, web.RouteLogout, web.RouteRegister,
	} {
		url, err := resolve(symbol)
		require.NoError(t, err, symbol)
		assert.NotEmpty(t, url)
	}
}

func TestNewResolver_BaseURLPrefix(t *testing.T) {
	resolve := NewResolver("https://sport.example/")
	url, err := resolve(web.RouteAthletes)
	require.NoError(t, err)
	assert.Equal(t, "https://sport.example/athletes", url)
}

func TestNewResolver_UnknownSymbol(t *testing.T) {
	resolve := NewResolver("")
	_, err := resolve("admin.secret")

	var urErr web.UnresolvedRouteError
	require.ErrorAs(t, err, &urErr)
	assert.Equal(t, "admin.secret", urErr.Symbol)
}
