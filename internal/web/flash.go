package web

// Flash is a one-shot notification: enqueued by an action, shown on the
// next page view, then discarded. Category is free-form; the presentation
// layer interprets the derived style token.
type Flash struct {
	Category string
	Text     string
}

// FlashView is a flash message prepared for rendering.
type FlashView struct {
	StyleToken  string
	Text        string
	Dismissible bool
}

// styleToken maps a flash category to its presentation token. "error" is
// the only special case; every other category passes through unchanged.
func styleToken(category string) string {
	if category == "error" {
		return "danger"
	}
	return category
}

// FlashViews prepares pending messages for display, preserving order.
// An empty input yields nil, and the templates omit the flash container
// entirely rather than emitting an empty one.
func FlashViews(pending []Flash) []FlashView {
	if len(pending) == 0 {
		return nil
	}
	views := make([]FlashView, 0, len(pending))
	for _, f := range pending {
		views = append(views, FlashView{
			StyleToken:  styleToken(f.Category),
			Text:        f.Text,
			Dismissible: true,
		})
	}
	return views
}
