// Package session owns the state that crosses one render boundary: the
// flash message hand-off. An action enqueues messages against the client,
// the next page view consumes them, and they are gone.
package session

import (
	"net/http"
	"net/url"
	"strings"

	"sportagency/internal/web"
)

const flashCookie = "flash"

// Enqueue appends one flash message to the pending queue carried by the
// flash cookie. Order of enqueueing is preserved through Consume. A queue
// already staged on this response (an earlier Enqueue, or the clearing
// cookie from Consume) takes precedence over the request cookie, so
// several enqueues within one response accumulate instead of overwriting
// each other.
func Enqueue(w http.ResponseWriter, r *http.Request, category, text string) {
	raw, staged := stagedValue(w)
	if !staged {
		raw = currentValue(r)
	}
	pending := append(decode(raw), web.Flash{Category: category, Text: text})
	if staged {
		dropStaged(w)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    encode(pending),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Consume returns all pending flash messages and clears the queue. The
// clearing cookie is written unconditionally once a queue existed, so a
// reload after the render shows nothing.
func Consume(w http.ResponseWriter, r *http.Request) []web.Flash {
	raw := currentValue(r)
	if raw == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return decode(raw)
}

func currentValue(r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// stagedValue returns the flash value from a Set-Cookie already written to
// this response, if any.
func stagedValue(w http.ResponseWriter) (string, bool) {
	var raw string
	var found bool
	for _, line := range w.Header().Values("Set-Cookie") {
		c, err := http.ParseSetCookie(line)
		if err != nil || c.Name != flashCookie {
			continue
		}
		raw = c.Value
		found = true
	}
	return raw, found
}

// dropStaged removes any flash Set-Cookie from the response so the header
// never carries two queues for the browser to race on.
func dropStaged(w http.ResponseWriter) {
	lines := w.Header().Values("Set-Cookie")
	w.Header().Del("Set-Cookie")
	for _, line := range lines {
		c, err := http.ParseSetCookie(line)
		if err == nil && c.Name == flashCookie {
			continue
		}
		w.Header().Add("Set-Cookie", line)
	}
}

// Wire format: records separated by '|', category and text separated by
// ':', both fields query-escaped so the separators cannot collide.
func encode(pending []web.Flash) string {
	records := make([]string, 0, len(pending))
	for _, f := range pending {
		records = append(records, url.QueryEscape(f.Category)+":"+url.QueryEscape(f.Text))
	}
	return strings.Join(records, "|")
}

func decode(raw string) []web.Flash {
	if raw == "" {
		return nil
	}
	var pending []web.Flash
	for _, record := range strings.Split(raw, "|") {
		category, text, ok := strings.Cut(record, ":")
		if !ok {
			continue
		}
		c, err := url.QueryUnescape(category)
		if err != nil {
			continue
		}
		t, err := url.QueryUnescape(text)
		if err != nil {
			continue
		}
		pending = append(pending, web.Flash{Category: c, Text: t})
	}
	return pending
}
