package views

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// markup writes HTML for one component. The first error sticks and later
// writes are dropped.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err == nil {
		_, m.err = io.WriteString(m.w, s)
	}
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// url writes a URL attribute after templ's scheme sanitization.
func (m *markup) url(name, value string) {
	m.attr(name, string(templ.URL(value)))
}

func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err == nil {
		m.err = c.Render(ctx, m.w)
	}
}

// FormatDate renders a YYYY-MM-DD date as "January 2, 2006". Other values
// are shown as they are.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// IsActive reports whether a navigation link points at the current page or
// one of its children.
func IsActive(href, current string) bool {
	u, err := url.Parse(current)
	if err != nil {
		return false
	}
	p := u.Path
	return p == href || strings.HasPrefix(p, href+"/")
}
