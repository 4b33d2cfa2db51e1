package devcraft

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/devcraft/content"
	"github.com/eringen/devcraft/sitemap"
)

// BuildReport summarises a static build.
type BuildReport struct {
	Posts    int      // post pages written
	Pages    int      // other HTML pages written, including 404.html
	Assets   int      // files copied from StaticDir
	Resized  int      // cover images downscaled while copying
	Sitemap  int      // sitemap entries
	Skipped  []string // slugs not built because they repeat or are unsafe
	Duration time.Duration
}

// Builder writes the whole site into Config.OutputDir.
type Builder struct {
	site *Site
	now  func() time.Time
}

// NewBuilder creates a Builder for site.
func NewBuilder(site *Site) *Builder {
	return &Builder{site: site, now: time.Now}
}

// Build lists the posts once and writes every page, the sitemap, the feed
// and robots.txt. A listing failure aborts the build before anything is
// written. The output directory is not cleaned first.
func (b *Builder) Build(ctx context.Context) (BuildReport, error) {
	var report BuildReport
	start := b.now()
	s := b.site
	out := s.Config.OutputDir

	posts, err := s.Posts.ListPosts()
	if err != nil {
		return report, fmt.Errorf("devcraft: list posts: %w", err)
	}
	posts, dropped := uniquePosts(posts)
	for _, p := range dropped {
		s.Logger.Warnf("build: duplicate slug %q in %s, the page uses the file that sorts first by name", p.Slug, p.SourceFile)
		report.Skipped = append(report.Skipped, p.Slug)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return report, fmt.Errorf("devcraft: %w", err)
	}

	if err := b.copyStatic(posts, &report); err != nil {
		return report, err
	}

	home := SiteMeta(s.Config, s.Config.Name, s.Config.Description, "/")
	if err := b.writePage(ctx, "/", s.Views.Home(LatestPosts(posts, s.Config.LatestPosts), home), &report); err != nil {
		return report, err
	}
	if err := b.writePage(ctx, "/blog", s.Views.BlogIndex(posts, SiteMeta(s.Config, "Blog", "", "/blog")), &report); err != nil {
		return report, err
	}

	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !safeSlug(p.Slug) {
			s.Logger.Warnf("build: slug %q in %s cannot be used as a path, skipping", p.Slug, p.SourceFile)
			report.Skipped = append(report.Skipped, p.Slug)
			continue
		}
		cmp, err := s.renderPost(p.Slug)
		if err != nil {
			return report, fmt.Errorf("devcraft: post %q: %w", p.Slug, err)
		}
		if err := RenderFile(ctx, b.pagePath("/blog/"+p.Slug), cmp); err != nil {
			return report, err
		}
		report.Posts++
	}

	for _, page := range StaticPages {
		cmp, err := s.renderPage(page)
		if err != nil {
			return report, fmt.Errorf("devcraft: page %s: %w", page.Name, err)
		}
		if err := b.writePage(ctx, page.Route, cmp, &report); err != nil {
			return report, err
		}
	}

	if err := RenderFile(ctx, filepath.Join(out, "404.html"), s.Views.NotFound(s.notFoundMeta())); err != nil {
		return report, err
	}
	report.Pages++

	if err := b.writeDocuments(posts, &report); err != nil {
		return report, err
	}

	report.Duration = b.now().Sub(start)
	s.Logger.Infof("built %d posts and %d pages into %s in %s", report.Posts, report.Pages, out, report.Duration)
	return report, nil
}

func (b *Builder) writePage(ctx context.Context, route string, cmp templ.Component, report *BuildReport) error {
	if err := RenderFile(ctx, b.pagePath(route), cmp); err != nil {
		return err
	}
	report.Pages++
	return nil
}

// pagePath maps a route to <out>/<route>/index.html.
func (b *Builder) pagePath(route string) string {
	return filepath.Join(b.site.Config.OutputDir, filepath.FromSlash(strings.TrimPrefix(route, "/")), "index.html")
}

func (b *Builder) writeDocuments(posts []content.PostRecord, report *BuildReport) error {
	out := b.site.Config.OutputDir

	sb := b.site.SitemapBuilder()
	sb.Now = b.now
	entries, err := sb.Entries()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := sitemap.Encode(&buf, entries); err != nil {
		return fmt.Errorf("devcraft: sitemap: %w", err)
	}
	if err := os.WriteFile(filepath.Join(out, "sitemap.xml"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("devcraft: %w", err)
	}
	report.Sitemap = len(entries)

	buf.Reset()
	if err := WriteFeed(&buf, b.site.Config, posts); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(out, "feed.xml"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("devcraft: %w", err)
	}

	robots := []byte(RobotsTxt(b.site.Config))
	if err := os.WriteFile(filepath.Join(out, "robots.txt"), robots, 0o644); err != nil {
		return fmt.Errorf("devcraft: %w", err)
	}
	return nil
}

// copyStatic mirrors StaticDir into the output. Post cover images are
// downscaled on the way. A missing StaticDir is not an error.
func (b *Builder) copyStatic(posts []content.PostRecord, report *BuildReport) error {
	root := b.site.Config.StaticDir
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		b.site.Logger.Debugf("build: no static directory at %s", root)
		return nil
	}

	covers := make(map[string]struct{})
	for _, p := range posts {
		if p.HasImage() {
			covers[path.Clean("/"+p.Image)] = struct{}{}
		}
	}

	return filepath.WalkDir(root, func(src string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, src)
		if err != nil {
			return err
		}
		_, cover := covers["/"+filepath.ToSlash(rel)]
		resized, err := copyAsset(src, filepath.Join(b.site.Config.OutputDir, rel), cover)
		if err != nil {
			return fmt.Errorf("devcraft: copy %s: %w", rel, err)
		}
		report.Assets++
		if resized {
			report.Resized++
		}
		return nil
	})
}

// uniquePosts keeps one record per slug, the file that Loader.GetPost
// resolves the slug to: the first in file-name order. Listing order is
// preserved.
func uniquePosts(posts []content.PostRecord) (kept, dropped []content.PostRecord) {
	owner := make(map[string]string, len(posts))
	for _, p := range posts {
		if cur, ok := owner[p.Slug]; !ok || p.SourceFile < cur {
			owner[p.Slug] = p.SourceFile
		}
	}
	kept = make([]content.PostRecord, 0, len(posts))
	for _, p := range posts {
		if owner[p.Slug] != p.SourceFile {
			dropped = append(dropped, p)
			continue
		}
		kept = append(kept, p)
	}
	return kept, dropped
}

// safeSlug reports whether slug can be used as a single path segment.
func safeSlug(slug string) bool {
	return slug != "" && slug != "." && slug != ".." && !strings.ContainsAny(slug, `/\`)
}
