// Package devcraft is a static blog built from a directory of markdown posts.
// It renders posts and informational pages with templ components, writes the
// whole site to a directory for static hosting, and can serve the same pages
// from an Echo preview server.
//
// Users provide their own templ templates via the ViewFuncs struct; devcraft
// loads content, renders markdown and produces sitemap.xml, feed.xml and
// robots.txt.
package devcraft

import (
	"github.com/a-h/templ"
	"github.com/labstack/gommon/log"

	"github.com/eringen/devcraft/content"
	"github.com/eringen/devcraft/markdown"
	"github.com/eringen/devcraft/sitemap"
)

// ViewFuncs holds user-provided templ components that the site calls when
// rendering pages. Body components render markdown lazily with the request
// or build context.
type ViewFuncs struct {
	Home        func(latest []content.PostRecord, meta PageMeta) templ.Component
	BlogIndex   func(posts []content.PostRecord, meta PageMeta) templ.Component
	Post        func(post content.PostRecord, body templ.Component, meta PageMeta) templ.Component
	Page        func(page StaticPage, body templ.Component, meta PageMeta) templ.Component
	NotFound    func(meta PageMeta) templ.Component
	ServerError func(meta PageMeta) templ.Component
}

// Site wires configuration, content loaders, the markdown renderer and the
// user's views. It is shared by the static Builder and the preview App.
type Site struct {
	Config   SiteConfig
	Posts    *content.Loader
	Pages    *content.Loader
	Renderer markdown.Renderer
	Views    ViewFuncs
	Logger   *log.Logger

	customRoutes []func(*App)
}

// New creates a Site with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *Site {
	cfg.setDefaults()

	s := &Site{
		Config: cfg,
		Views:  views,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = log.New("devcraft")
		s.Logger.SetLevel(ParseLogLevel(cfg.LogLevel))
	}
	if s.Renderer == nil {
		s.Renderer = markdown.New(markdown.WithLazyImages())
	}
	s.Posts = content.NewLoader(cfg.ContentDir, content.WithLogger(s.Logger))
	s.Pages = content.NewLoader(cfg.PagesDir, content.WithLogger(s.Logger))
	return s
}

// PostBody returns the rendered body of a post as a component.
func (s *Site) PostBody(post content.Post) templ.Component {
	return markdown.Component(s.Renderer, post.Content)
}

// PageBody returns the markdown body of a static page from PagesDir. A page
// without a file, or a missing PagesDir, yields an empty component.
func (s *Site) PageBody(page StaticPage) (templ.Component, error) {
	p, err := s.Pages.GetPost(page.Name)
	if err != nil {
		if content.IsNotFound(err) || content.IsRootMissing(err) {
			return templ.NopComponent, nil
		}
		return nil, err
	}
	return markdown.Component(s.Renderer, p.Content), nil
}

// SitemapBuilder returns a sitemap builder for the site's routes and posts.
func (s *Site) SitemapBuilder() *sitemap.Builder {
	return &sitemap.Builder{
		BaseURL: s.Config.SitemapURL,
		Routes:  SiteRoutes(),
		Posts:   s.Posts,
	}
}

// WriteSitemap exports sitemap.xml to Config.SitemapPath.
func (s *Site) WriteSitemap() (int, error) {
	n, err := s.SitemapBuilder().WriteFile(s.Config.SitemapPath)
	if err != nil {
		return 0, err
	}
	s.Logger.Infof("wrote %d sitemap entries to %s", n, s.Config.SitemapPath)
	return n, nil
}

// renderPost renders a full post page for slug.
func (s *Site) renderPost(slug string) (templ.Component, error) {
	post, err := s.Posts.GetPost(slug)
	if err != nil {
		return nil, err
	}
	return s.Views.Post(post.PostRecord, s.PostBody(post), PostMeta(s.Config, post.PostRecord)), nil
}

func (s *Site) renderPage(page StaticPage) (templ.Component, error) {
	body, err := s.PageBody(page)
	if err != nil {
		return nil, err
	}
	return s.Views.Page(page, body, SiteMeta(s.Config, page.Title, page.Description, page.Route)), nil
}

func (s *Site) notFoundMeta() PageMeta {
	return SiteMeta(s.Config, "Not Found", "The page you are looking for does not exist.", "/404")
}
