package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebhook_EmptyURLIsNoop(t *testing.T) {
	n := NewWebhook("  ")
	_, ok := n.(Noop)
	assert.True(t, ok)
}

func TestWebhook_PostsPayload(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	NewWebhook(srv.URL).NotifyAdmins(context.Background(), "New account requested: alice")

	assert.Equal(t, "New account requested: alice", got["text"])
}

func TestWebhook_ServerErrorDoesNotPanic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.NotPanics(t, func() {
		NewWebhook(srv.URL).NotifyAdmins(context.Background(), "msg")
	})
}
