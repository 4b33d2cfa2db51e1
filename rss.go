package devcraft

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/eringen/devcraft/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// WriteFeed writes an RSS 2.0 feed of posts to w.
func WriteFeed(w io.Writer, cfg SiteConfig, posts []content.PostRecord) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := PostURL(cfg, p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        BuildURL(cfg.URL),
			Description: cfg.Description,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if err := xml.NewEncoder(w).Encode(feed); err != nil {
		return fmt.Errorf("devcraft: encode feed: %w", err)
	}
	return nil
}

// RobotsTxt returns a robots.txt that allows everything and points crawlers
// at the sitemap.
func RobotsTxt(cfg SiteConfig) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n\n")
	fmt.Fprintf(&b, "Sitemap: %s\n", BuildURL(cfg.SitemapURL, "sitemap.xml"))
	return b.String()
}
