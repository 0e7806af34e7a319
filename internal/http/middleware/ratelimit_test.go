package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginThrottle_BlocksOverLimit(t *testing.T) {
	lt := NewLoginThrottle(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, lt.Allow("alice", "10.0.0.1"), "attempt %d", i)
	}
	assert.False(t, lt.Allow("alice", "10.0.0.1"))

	// Same account from another address, and another account from the same
	// address, both keep their own windows.
	assert.True(t, lt.Allow("alice", "10.0.0.2"))
	assert.True(t, lt.Allow("bob", "10.0.0.1"))
}

func TestLoginThrottle_UsernameCaseInsensitive(t *testing.T) {
	lt := NewLoginThrottle(1, time.Minute)

	assert.True(t, lt.Allow("Alice", "10.0.0.1"))
	assert.False(t, lt.Allow("alice", "10.0.0.1"))
}

func TestLoginThrottle_NilAllowsEverything(t *testing.T) {
	var lt *LoginThrottle
	assert.True(t, lt.Allow("anyone", "anywhere"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.10:51234"
	assert.Equal(t, "192.0.2.10", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 192.0.2.10")
	assert.Equal(t, "203.0.113.5", ClientIP(req))

	req.Header.Del("X-Forwarded-For")
	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", ClientIP(req))
}
