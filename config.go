package devcraft

import (
	"strconv"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/eringen/devcraft/markdown"
)

const localURL = "http://localhost:3000"

// SiteConfig holds all configuration for a devcraft site.
type SiteConfig struct {
	Name        string // Site name (default "DevCraft Blog")
	URL         string // Canonical base URL, no trailing slash (default "http://localhost:3000")
	SitemapURL  string // Base URL used in sitemap.xml (default URL)
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr        string // Preview server listen address (default ":3000")
	ContentDir  string // Post directory (default "content/posts")
	PagesDir    string // Optional markdown for static pages (default "content/pages")
	StaticDir   string // Assets copied into the build (default "public")
	OutputDir   string // Static build output (default "out")
	SitemapPath string // Standalone sitemap export (default "public/sitemap.xml")
	LatestPosts int    // Posts listed on the home page (default 3)
	LogLevel    string // debug, info, warn, error or off (default "info")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "DevCraft Blog"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.URL == "" {
		c.URL = localURL
	}
	c.SitemapURL = strings.TrimRight(c.SitemapURL, "/")
	if c.SitemapURL == "" {
		c.SitemapURL = c.URL
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/posts"
	}
	if c.PagesDir == "" {
		c.PagesDir = "content/pages"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.SitemapPath == "" {
		c.SitemapPath = "public/sitemap.xml"
	}
	if c.LatestPosts <= 0 {
		c.LatestPosts = 3
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// ConfigFromEnv resolves a SiteConfig from environment lookups. Pass
// os.Getenv in main; tests pass a map lookup.
//
// The site URL is NEXT_PUBLIC_SITE_URL, else SITE_URL, else https:// plus
// VERCEL_URL, else http://localhost:3000. SITEMAP_BASE_URL overrides it for
// the sitemap only.
func ConfigFromEnv(getenv func(string) string) SiteConfig {
	env := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}
	cfg := SiteConfig{
		Name:        env("SITE_NAME"),
		URL:         siteURL(env),
		SitemapURL:  env("SITEMAP_BASE_URL"),
		Description: env("SITE_DESCRIPTION"),
		Author:      env("SITE_AUTHOR"),
		Addr:        env("ADDR"),
		ContentDir:  env("CONTENT_DIR"),
		PagesDir:    env("PAGES_DIR"),
		StaticDir:   env("STATIC_DIR"),
		OutputDir:   env("OUTPUT_DIR"),
		SitemapPath: env("SITEMAP_PATH"),
		LogLevel:    strings.ToLower(env("LOG_LEVEL")),
	}
	if n, err := strconv.Atoi(env("LATEST_POSTS")); err == nil {
		cfg.LatestPosts = n
	}
	cfg.setDefaults()
	return cfg
}

func siteURL(env func(string) string) string {
	if v := env("NEXT_PUBLIC_SITE_URL"); v != "" {
		return v
	}
	if v := env("SITE_URL"); v != "" {
		return v
	}
	if v := env("VERCEL_URL"); v != "" {
		if !strings.Contains(v, "://") {
			v = "https://" + v
		}
		return v
	}
	return localURL
}

// ParseLogLevel maps a LOG_LEVEL value to a gommon level. Unknown values
// give INFO.
func ParseLogLevel(s string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// Option configures additional Site behavior.
type Option func(*Site)

// WithLogger sets the logger shared by the loaders, the builder and the
// preview server.
func WithLogger(l *log.Logger) Option {
	return func(s *Site) {
		s.Logger = l
	}
}

// WithRenderer replaces the markdown renderer used for posts and pages.
func WithRenderer(r markdown.Renderer) Option {
	return func(s *Site) {
		s.Renderer = r
	}
}

// WithCustomRoutes registers additional routes on the preview server.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(s *Site) {
		s.customRoutes = append(s.customRoutes, fn)
	}
}
