package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sportagency/internal/http/middleware"
)

type DashboardHandler struct {
	DB    *pgxpool.Pool
	Shell *Shell
}

type dashboardContent struct {
	RosterCount     int64
	ActiveContracts int64
	AgencyTotal     int64 // only loaded for staff
	Roster          []athleteRow
}

// ServeHTTP renders the signed-in agent's dashboard. The route is wrapped
// in RequireAuth, so an empty user id cannot reach this point.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UserID(r)
	id := loadIdentity(r.Context(), h.DB, uid)

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	var content dashboardContent
	err := h.DB.QueryRow(ctx, `
		select count(*),
		       count(*) filter (where contract_active)
		from athletes
		where agent_user_id = $1 and not is_deleted
	`, uid).Scan(&content.RosterCount, &content.ActiveContracts)
	if err != nil {
		slog.Error("dashboard.counts", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if staff, err := middleware.IsStaff(ctx, h.DB, uid); err == nil && staff {
		if err := h.DB.QueryRow(ctx,
			`select count(*) from athletes where not is_deleted`,
		).Scan(&content.AgencyTotal); err != nil {
			slog.Warn("dashboard.agency_total", "err", err)
		}
	}

	rows, err := h.DB.Query(ctx, `
		select first_name || ' ' || last_name, sport, coalesce(position, ''),
		       coalesce(current_team, ''),
		       coalesce(date_part('year', age(date_of_birth))::int, 0),
		       coalesce(overall_rating, 0)
		from athletes
		where agent_user_id = $1 and not is_deleted
		order by last_name, first_name
	`, uid)
	if err != nil {
		slog.Error("dashboard.roster", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()
	for rows.Next() {
		var a athleteRow
		if err := rows.Scan(&a.FullName, &a.Sport, &a.Position, &a.Team, &a.Age, &a.Rating); err != nil {
			http.Error(w, "scan error", http.StatusInternalServerError)
			return
		}
		content.Roster = append(content.Roster, a)
	}

	h.Shell.Render(w, r, id, pageSpec{Template: "dashboard", Title: "Dashboard"}, content)
}
