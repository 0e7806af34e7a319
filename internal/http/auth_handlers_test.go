package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sportagency/internal/http/middleware"
)

func TestLoginBarrier_BlocksUnverifiedAccounts(t *testing.T) {
	msg, blocked := loginBarrier(middleware.RoleUnverified)
	assert.True(t, blocked)
	assert.Equal(t, "Your account is awaiting approval.", msg)
}

func TestLoginBarrier_AllowsVerifiedRoles(t *testing.T) {
	for _, role := range []string{middleware.RoleUser, middleware.RoleModerator, middleware.RoleAdmin} {
		msg, blocked := loginBarrier(role)
		assert.False(t, blocked, role)
		assert.Empty(t, msg)
	}
}
