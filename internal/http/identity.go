package http

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sportagency/internal/web"
)

// loadIdentity resolves the request's user id to template identity data.
// A failed lookup yields the anonymous identity; the session token may
// outlive the account.
func loadIdentity(ctx context.Context, db *pgxpool.Pool, uid string) web.Identity {
	id := web.Identity{}
	if uid == "" {
		return id
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := db.QueryRow(ctx, `
		select username, display_name, role
		from users where id = $1
	`, uid).Scan(&id.Username, &id.DisplayName, &id.Role)
	if err == nil && id.Username != "" {
		id.LoggedIn = true
	}
	return id
}
