package http

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sportagency/internal/http/middleware"
	"sportagency/internal/logging"
)

type AthletesHandler struct {
	DB    *pgxpool.Pool
	Shell *Shell
}

type athleteRow struct {
	FullName string
	Sport    string
	Position string
	Team     string
	Age      int
	Rating   float64
}

type athletesContent struct {
	Query   string
	Sport   string
	Sports  []string
	Rows    []athleteRow
	Page    int
	PerPage int
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

func (h *AthletesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := loadIdentity(r.Context(), h.DB, middleware.UserID(r))

	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	sport := strings.ToLower(strings.TrimSpace(q.Get("sport")))
	page := atoiDefault(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	perPage := atoiDefault(q.Get("per_page"), 10)
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	filters := []string{"not is_deleted"}
	if query != "" {
		pattern := "%" + query + "%"
		ph := arg(pattern)
		filters = append(filters, `(
			first_name ilike `+ph+`
			or last_name ilike `+ph+`
			or first_name || ' ' || last_name ilike `+ph+`
			or coalesce(position, '') ilike `+ph+`
			or coalesce(current_team, '') ilike `+ph+`
		)`)
	}
	if sport != "" {
		filters = append(filters, `lower(sport) = `+arg(sport))
	}

	limitPH := arg(perPage + 1)
	offsetPH := arg((page - 1) * perPage)

	sql := `
		select first_name || ' ' || last_name,
		       sport,
		       coalesce(position, ''),
		       coalesce(current_team, ''),
		       coalesce(date_part('year', age(date_of_birth))::int, 0),
		       coalesce(overall_rating, 0)
		from athletes
		where ` + strings.Join(filters, " and ") + `
		order by overall_rating desc nulls last, last_name, first_name
		limit ` + limitPH + `::int offset ` + offsetPH + `::int
	`

	rows, err := h.DB.Query(ctx, sql, args...)
	if err != nil {
		logging.From(r.Context()).Error("athletes.query", "err", err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var list []athleteRow
	for rows.Next() {
		var a athleteRow
		if err := rows.Scan(&a.FullName, &a.Sport, &a.Position, &a.Team, &a.Age, &a.Rating); err != nil {
			http.Error(w, "scan error", http.StatusInternalServerError)
			return
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		http.Error(w, "db rows error", http.StatusInternalServerError)
		return
	}

	hasNext := false
	if len(list) > perPage {
		hasNext = true
		list = list[:perPage]
	}

	var sports []string
	{
		srows, err := h.DB.Query(ctx,
			`select distinct lower(sport) from athletes where not is_deleted order by 1`)
		if err == nil {
			defer srows.Close()
			for srows.Next() {
				var s string
				if err := srows.Scan(&s); err != nil {
					break
				}
				sports = append(sports, s)
			}
		}
	}

	content := athletesContent{
		Query:   query,
		Sport:   sport,
		Sports:  sports,
		Rows:    list,
		Page:    page,
		PerPage: perPage,
		HasPrev: page > 1,
		HasNext: hasNext,
		PrevURL: athletesURL(query, sport, page-1, perPage),
		NextURL: athletesURL(query, sport, page+1, perPage),
	}

	h.Shell.Render(w, r, id, pageSpec{Template: "athletes", Title: "Athletes"}, content)
}

func athletesURL(query, sport string, page, perPage int) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if sport != "" {
		v.Set("sport", sport)
	}
	v.Set("page", strconv.Itoa(page))
	if perPage != 10 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
	return "/athletes?" + v.Encode()
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
