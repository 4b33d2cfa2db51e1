// Package sitemap builds the sitemap.xml document for the site: the fixed
// static routes followed by one route per post.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eringen/devcraft/content"
)

// Namespace is the sitemap protocol namespace written on <urlset>.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

const dateLayout = "2006-01-02"

// DefaultRoutes are the site paths that do not depend on content.
var DefaultRoutes = []string{"/", "/blog", "/about", "/contact", "/privacy-policy", "/terms"}

// PostSource lists the posts to include. *content.Loader satisfies it.
type PostSource interface {
	ListPosts() ([]content.PostRecord, error)
}

// Entry is one <url> element.
type Entry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

// Builder assembles sitemap entries for a base URL.
type Builder struct {
	BaseURL string
	Routes  []string   // DefaultRoutes when nil
	Posts   PostSource // may be nil
	Now     func() time.Time
}

// PostRoute returns the site path of the post with the given slug.
func PostRoute(slug string) string {
	return "/blog/" + url.PathEscape(slug)
}

// Entries returns static routes first, then one entry per post in listing
// order. Locations that repeat are kept once. A content directory that does
// not exist yields no post entries; any other listing error is returned.
func (b *Builder) Entries() ([]Entry, error) {
	base := strings.TrimRight(b.BaseURL, "/")
	routes := b.Routes
	if routes == nil {
		routes = DefaultRoutes
	}
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	buildDate := now().UTC().Format(dateLayout)

	var posts []content.PostRecord
	if b.Posts != nil {
		var err error
		posts, err = b.Posts.ListPosts()
		if err != nil && !content.IsRootMissing(err) {
			return nil, fmt.Errorf("sitemap: list posts: %w", err)
		}
	}

	entries := make([]Entry, 0, len(routes)+len(posts))
	seen := make(map[string]struct{}, cap(entries))
	add := func(route, lastMod string) {
		loc := base + normalizeRoute(route)
		if _, ok := seen[loc]; ok {
			return
		}
		seen[loc] = struct{}{}
		entries = append(entries, Entry{Loc: loc, LastMod: lastMod})
	}
	for _, r := range routes {
		add(r, buildDate)
	}
	for _, p := range posts {
		add(PostRoute(p.Slug), lastModified(p.Date))
	}
	return entries, nil
}

// Encode writes entries as a sitemap document.
func Encode(w io.Writer, entries []Entry) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(urlSet{XMLNS: Namespace, URLs: entries}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile builds the sitemap and writes it to path, creating parent
// directories. It returns the number of entries written.
func (b *Builder) WriteFile(path string) (int, error) {
	entries, err := b.Entries()
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("sitemap: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("sitemap: %w", err)
	}
	if err := Encode(f, entries); err != nil {
		f.Close()
		return 0, fmt.Errorf("sitemap: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("sitemap: %w", err)
	}
	return len(entries), nil
}

// normalizeRoute makes sure a route starts with a slash. The root route
// "/" is kept so the home page is listed as base + "/".
func normalizeRoute(route string) string {
	if !strings.HasPrefix(route, "/") {
		return "/" + route
	}
	return route
}

// lastModified returns the W3C date for a post date, or "" when the date
// cannot be read.
func lastModified(date string) string {
	date = strings.TrimSpace(date)
	if t, err := time.Parse(dateLayout, date); err == nil {
		return t.Format(dateLayout)
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.UTC().Format(dateLayout)
	}
	return ""
}
