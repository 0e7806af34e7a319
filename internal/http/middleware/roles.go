package middleware

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	RoleUnverified = "unverified"
	RoleUser       = "user"
	RoleModerator  = "moderator"
	RoleAdmin      = "admin"
)

// IsStaff reports whether the user may administer athlete records.
func IsStaff(ctx context.Context, db *pgxpool.Pool, userID string) (bool, error) {
	role, err := GetUserRole(ctx, db, userID)
	if err != nil {
		return false, err
	}
	return role == RoleModerator || role == RoleAdmin, nil
}

func GetUserRole(ctx context.Context, db *pgxpool.Pool, userID string) (string, error) {
	var role string
	err := db.QueryRow(ctx, `select role from users where id = $1`, userID).Scan(&role)
	return role, err
}
