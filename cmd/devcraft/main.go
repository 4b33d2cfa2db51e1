package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/eringen/devcraft"
	"github.com/eringen/devcraft/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	cfg := devcraft.ConfigFromEnv(getenv)
	logger := log.New("devcraft")
	logger.SetOutput(stderr)
	logger.SetLevel(devcraft.ParseLogLevel(cfg.LogLevel))

	newSite := func() *devcraft.Site {
		return devcraft.New(cfg, views.New(cfg), devcraft.WithLogger(logger))
	}

	var err error
	switch args[0] {
	case "build":
		_, err = devcraft.NewBuilder(newSite()).Build(context.Background())
	case "sitemap":
		_, err = newSite().WriteSitemap()
	case "serve":
		err = serve(newSite())
	case "new":
		if len(args) < 2 {
			fmt.Fprintln(stderr, "Usage: devcraft new <directory>")
			return 1
		}
		err = runNew(args[1], stdout)
	case "version":
		fmt.Fprintf(stdout, "devcraft %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 1
	}
	if err != nil {
		logger.Errorf("%s: %v", args[0], err)
		return 1
	}
	return 0
}

// serve runs the preview server until SIGINT or SIGTERM.
func serve(site *devcraft.Site) error {
	app := devcraft.NewApp(site)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- app.Start()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `devcraft - a static markdown blog

Usage:
  devcraft <command> [arguments]

Commands:
  build          Render the site into OUTPUT_DIR (default "out")
  sitemap        Write sitemap.xml to SITEMAP_PATH (default "public/sitemap.xml")
  serve          Start the preview server on ADDR (default ":3000")
  new <dir>      Create a new site with starter content
  version        Print the devcraft version
  help           Show this help message

Configuration is read from the environment: SITE_NAME, SITE_URL,
NEXT_PUBLIC_SITE_URL, SITEMAP_BASE_URL, VERCEL_URL, SITE_DESCRIPTION,
SITE_AUTHOR, CONTENT_DIR, PAGES_DIR, STATIC_DIR, OUTPUT_DIR, SITEMAP_PATH,
LATEST_POSTS, ADDR and LOG_LEVEL.`)
}
