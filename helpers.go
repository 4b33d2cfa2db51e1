package devcraft

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/eringen/devcraft/content"
	"github.com/eringen/devcraft/sitemap"
)

// BuildURL joins a base URL with path segments. The result never ends in a
// slash unless it is the bare site root.
func BuildURL(base string, pathSegments ...string) string {
	base = strings.TrimRight(base, "/")
	if len(pathSegments) == 0 {
		return base + "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return base + path.Join("/", path.Join(pathSegments...))
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	return u.String()
}

// PostURL returns the absolute URL of a post.
func PostURL(cfg SiteConfig, slug string) string {
	return strings.TrimRight(cfg.URL, "/") + sitemap.PostRoute(slug)
}

// ImageURL turns a site-relative image path into an absolute URL. Values
// that are already absolute are returned as they are.
func ImageURL(cfg SiteConfig, image string) string {
	if image == "" {
		return ""
	}
	if strings.Contains(image, "://") {
		return image
	}
	if !strings.HasPrefix(image, "/") {
		image = "/" + image
	}
	return strings.TrimRight(cfg.URL, "/") + image
}

// SiteMeta builds the metadata of a non-article page.
func SiteMeta(cfg SiteConfig, title, description, route string) PageMeta {
	if description == "" {
		description = cfg.Description
	}
	return PageMeta{
		Title:       title,
		Description: description,
		URL:         BuildURL(cfg.URL, route),
		OGType:      "website",
		SiteName:    cfg.Name,
	}
}

// PostMeta builds the metadata of a post page: canonical URL, article type
// and the cover image as og:image.
func PostMeta(cfg SiteConfig, post content.PostRecord) PageMeta {
	return PageMeta{
		Title:       post.Title,
		Description: post.Description,
		URL:         PostURL(cfg, post.Slug),
		OGType:      "article",
		Image:       ImageURL(cfg, post.Image),
		SiteName:    cfg.Name,
	}
}

// LatestPosts returns at most n posts from an already sorted listing.
func LatestPosts(posts []content.PostRecord, n int) []content.PostRecord {
	if n >= 0 && len(posts) > n {
		return posts[:n]
	}
	return posts
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(cfg SiteConfig, post content.PostRecord) string {
	postURL := PostURL(cfg, post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Description,
		"datePublished": post.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if post.HasImage() {
		data["image"] = ImageURL(cfg, post.Image)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
