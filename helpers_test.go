package devcraft

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/eringen/devcraft/content"
	"github.com/eringen/devcraft/sitemap"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://example.com", nil, "https://example.com/"},
		{"https://example.com/", nil, "https://example.com/"},
		{"https://example.com", []string{"/"}, "https://example.com/"},
		{"https://example.com/", []string{"blog", "hello"}, "https://example.com/blog/hello"},
		{"https://example.com", []string{"/about"}, "https://example.com/about"},
		{"https://example.com/sub", []string{"blog"}, "https://example.com/sub/blog"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("BuildURL(%q, %q) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

func TestSiteRoutesMatchSitemapDefaults(t *testing.T) {
	if got := SiteRoutes(); !reflect.DeepEqual(got, sitemap.DefaultRoutes) {
		t.Errorf("SiteRoutes() = %v, want %v", got, sitemap.DefaultRoutes)
	}
}

func TestPostMeta(t *testing.T) {
	cfg := SiteConfig{Name: "Blog", URL: "https://example.com"}
	post := content.PostRecord{Title: "Hello", Description: "Hi", Slug: "hello-world", Image: "/images/cover.png"}
	meta := PostMeta(cfg, post)
	want := PageMeta{
		Title:       "Hello",
		Description: "Hi",
		URL:         "https://example.com/blog/hello-world",
		OGType:      "article",
		Image:       "https://example.com/images/cover.png",
		SiteName:    "Blog",
	}
	if meta != want {
		t.Errorf("PostMeta = %+v, want %+v", meta, want)
	}

	post.Image = ""
	if PostMeta(cfg, post).Image != "" {
		t.Errorf("post without cover should have no og:image")
	}
}

func TestSiteMetaDefaultsDescription(t *testing.T) {
	cfg := SiteConfig{Name: "Blog", URL: "https://example.com", Description: "site"}
	meta := SiteMeta(cfg, "About", "", "/about")
	if meta.Description != "site" || meta.URL != "https://example.com/about" || meta.OGType != "website" {
		t.Errorf("unexpected meta %+v", meta)
	}
}

func TestImageURL(t *testing.T) {
	cfg := SiteConfig{URL: "https://example.com"}
	tests := []struct {
		image    string
		expected string
	}{
		{"", ""},
		{"/a.png", "https://example.com/a.png"},
		{"a.png", "https://example.com/a.png"},
		{"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
	}
	for _, tt := range tests {
		if got := ImageURL(cfg, tt.image); got != tt.expected {
			t.Errorf("ImageURL(%q) = %q, want %q", tt.image, got, tt.expected)
		}
	}
}

func TestLatestPosts(t *testing.T) {
	posts := make([]content.PostRecord, 5)
	if got := len(LatestPosts(posts, 3)); got != 3 {
		t.Errorf("LatestPosts(5, 3) returned %d", got)
	}
	if got := len(LatestPosts(posts[:2], 3)); got != 2 {
		t.Errorf("LatestPosts(2, 3) returned %d", got)
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Blog", URL: "https://example.com", Author: "Ada"}
	post := content.PostRecord{Title: "Hello", Date: "2024-01-05", Slug: "hello", Image: "/c.png"}
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(BlogPostingJsonLD(cfg, post)), &data); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	if data["url"] != "https://example.com/blog/hello" {
		t.Errorf("url = %v", data["url"])
	}
	if data["image"] != "https://example.com/c.png" {
		t.Errorf("image = %v", data["image"])
	}
	if data["datePublished"] != "2024-01-05" {
		t.Errorf("datePublished = %v", data["datePublished"])
	}
}

func TestWebsiteJsonLDOmitsEmptyFields(t *testing.T) {
	got := WebsiteJsonLD(SiteConfig{Name: "Blog", URL: "https://example.com"})
	if strings.Contains(got, "description") || strings.Contains(got, "author") {
		t.Errorf("empty fields should be omitted: %s", got)
	}
}

func TestRobotsTxt(t *testing.T) {
	got := RobotsTxt(SiteConfig{SitemapURL: "https://example.com/"})
	if !strings.Contains(got, "Sitemap: https://example.com/sitemap.xml\n") {
		t.Errorf("unexpected robots.txt:\n%s", got)
	}
}
