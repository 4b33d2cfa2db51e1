package devcraft

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// App is the preview server. It serves the same pages the static build
// writes, re-reading content on every request.
type App struct {
	*Site
	Echo *echo.Echo
}

// NewApp creates the Echo instance for site with middleware and routes
// registered.
func NewApp(site *Site) *App {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger = site.Logger

	a := &App{Site: site, Echo: e}
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range site.customRoutes {
		fn(a)
	}
	return a
}

// ServeHTTP lets the App be used as an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Echo.ServeHTTP(w, r)
}

// Start listens on Config.Addr until the server is shut down.
func (a *App) Start() error {
	a.Logger.Infof("serving %s on %s", a.Config.ContentDir, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/", a.handleHome)
	e.GET("/blog", a.handleBlogIndex)
	e.GET("/blog/:slug", a.handlePost)
	for _, page := range StaticPages {
		e.GET(page.Route, a.handlePage(page))
	}

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/robots.txt", a.handleRobots)

	// User's static assets, served from the site root like the build output.
	e.Static("/", a.Config.StaticDir)
}
