package devcraft

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/devcraft/content"
	"github.com/eringen/devcraft/sitemap"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.listPosts()
	if err != nil {
		return err
	}
	meta := SiteMeta(a.Config, a.Config.Name, a.Config.Description, "/")
	return Render(c, a.Views.Home(LatestPosts(posts, a.Config.LatestPosts), meta))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	posts, err := a.listPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.BlogIndex(posts, SiteMeta(a.Config, "Blog", "", "/blog")))
}

// listPosts returns the posts with one record per slug, matching the page
// that /blog/:slug serves.
func (a *App) listPosts() ([]content.PostRecord, error) {
	posts, err := a.Posts.ListPosts()
	if err != nil {
		return nil, err
	}
	posts, _ = uniquePosts(posts)
	return posts, nil
}

func (a *App) handlePost(c echo.Context) error {
	page, err := a.renderPost(c.Param("slug"))
	if err != nil {
		if content.IsNotFound(err) || content.IsInvalidArgument(err) {
			return echo.ErrNotFound
		}
		return err
	}
	return Render(c, page)
}

func (a *App) handlePage(page StaticPage) echo.HandlerFunc {
	return func(c echo.Context) error {
		cmp, err := a.renderPage(page)
		if err != nil {
			return err
		}
		return Render(c, cmp)
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	entries, err := a.SitemapBuilder().Entries()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := sitemap.Encode(&buf, entries); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.listPosts()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteFeed(&buf, a.Config, posts); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", buf.Bytes())
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, RobotsTxt(a.Config))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.notFoundMeta()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		meta := SiteMeta(a.Config, "Server Error", "", c.Request().URL.Path)
		if rerr := RenderStatus(c, code, a.Views.ServerError(meta)); rerr != nil {
			_ = c.String(code, http.StatusText(code))
		}
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
