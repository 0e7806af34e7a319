package http

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sportagency/internal/http/middleware"
	"sportagency/internal/logging"
)

// clientSatisfactionPercent is a marketing figure shown on the landing
// page; the agency updates it with each quarterly survey.
const clientSatisfactionPercent = 98.7

type HomeHandler struct {
	DB    *pgxpool.Pool
	Shell *Shell
}

type homeContent struct {
	Headline            string
	Description         string
	AthleteCount        int64
	SatisfactionPercent float64
	Featured            []athleteRow
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := loadIdentity(r.Context(), h.DB, middleware.UserID(r))

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	content := homeContent{
		Headline:            "Representation that moves careers forward",
		Description:         "We negotiate contracts, manage endorsements and build long-term careers across the major leagues.",
		SatisfactionPercent: clientSatisfactionPercent,
	}

	if err := h.DB.QueryRow(ctx,
		`select count(*) from athletes where not is_deleted`,
	).Scan(&content.AthleteCount); err != nil {
		logging.From(r.Context()).Warn("home.count", "err", err)
	}

	rows, err := h.DB.Query(ctx, `
		select first_name || ' ' || last_name, sport, coalesce(position, ''),
		       coalesce(current_team, ''), coalesce(overall_rating, 0)
		from athletes
		where not is_deleted
		order by overall_rating desc nulls last, last_name, first_name
		limit 5
	`)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var a athleteRow
			if err := rows.Scan(&a.FullName, &a.Sport, &a.Position, &a.Team, &a.Rating); err != nil {
				break
			}
			content.Featured = append(content.Featured, a)
		}
	}

	h.Shell.Render(w, r, id, pageSpec{Template: "home"}, content)
}
