package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/devcraft"
	"github.com/eringen/devcraft/content"
	"github.com/eringen/devcraft/sitemap"
)

func homeContent(site devcraft.SiteConfig, latest []content.PostRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<section class="space-y-4">`)
		m.raw(`<h1 class="text-3xl font-bold tracking-tight">`)
		m.text(site.Name)
		m.raw("</h1>")
		if site.Description != "" {
			m.raw(`<p class="text-slate-300">`)
			m.text(site.Description)
			m.raw("</p>")
		}
		m.raw(`<p><a href="/blog" class="rounded-md bg-indigo-500 px-4 py-2 text-sm font-medium text-white">Read the Blog</a></p>`)
		m.raw("</section>\n")

		m.raw(`<section class="mt-12 space-y-4">`)
		m.raw(`<div class="flex items-center justify-between"><h2 class="text-xl font-semibold">Latest articles</h2>`)
		m.raw(`<a href="/blog" class="text-sm text-indigo-400">View all</a></div>`)
		if len(latest) == 0 {
			m.raw(`<p class="text-slate-400">No posts yet.</p>`)
		} else {
			m.raw(`<div class="grid gap-4 md:grid-cols-3">`)
			for _, p := range latest {
				m.raw(`<article class="latest-post rounded-xl border border-slate-800 p-4">`)
				m.raw(`<p class="text-xs uppercase text-slate-400">`)
				m.text(FormatDate(p.Date))
				m.raw(`</p><h3 class="mt-2 text-sm font-semibold"><a`)
				m.url("href", sitemap.PostRoute(p.Slug))
				m.raw(">")
				m.text(p.Title)
				m.raw(`</a></h3><p class="mt-2 text-xs text-slate-300">`)
				m.text(p.Description)
				m.raw("</p></article>")
			}
			m.raw("</div>")
		}
		m.raw("</section>")
		return m.err
	})
}

func blogContent(site devcraft.SiteConfig, posts []content.PostRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<section class="mx-auto max-w-3xl space-y-6">`)
		m.raw(`<header class="space-y-2 border-b border-slate-800 pb-4"><h1 class="text-3xl font-bold">Blog</h1>`)
		if site.Description != "" {
			m.raw(`<p class="text-sm text-slate-300">`)
			m.text(site.Description)
			m.raw("</p>")
		}
		m.raw("</header>\n")
		m.raw(`<ul class="space-y-4">`)
		for _, p := range posts {
			m.raw(`<li class="post-item border-b border-slate-800 pb-4"><a`)
			m.url("href", sitemap.PostRoute(p.Slug))
			m.raw(` class="text-lg font-semibold text-indigo-300">`)
			m.text(p.Title)
			m.raw(`</a><p class="text-xs text-slate-400">`)
			m.text(FormatDate(p.Date))
			m.raw(`</p><p class="text-sm text-slate-300">`)
			m.text(p.Description)
			m.raw("</p></li>\n")
		}
		if len(posts) == 0 {
			m.raw(`<li class="text-slate-400">No posts yet.</li>`)
		}
		m.raw("</ul></section>")
		return m.err
	})
}

func postContent(post content.PostRecord, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<article class="mx-auto space-y-4">`)
		m.raw(`<header class="space-y-2 border-b border-slate-800 pb-4"><h1 class="text-2xl font-bold">`)
		m.text(post.Title)
		m.raw("</h1>")
		if post.Date != "" {
			m.raw(`<p class="text-xs text-slate-400">Published on <time`)
			m.attr("datetime", post.Date)
			m.raw(">")
			m.text(FormatDate(post.Date))
			m.raw("</time></p>")
		}
		if post.Description != "" {
			m.raw(`<p class="text-sm text-slate-300">`)
			m.text(post.Description)
			m.raw("</p>")
		}
		m.raw("</header>\n")
		if post.HasImage() {
			m.raw(`<div class="my-4"><img`)
			m.url("src", post.Image)
			m.attr("alt", post.Title)
			m.raw(` class="w-full rounded-md object-cover"></div>` + "\n")
		}
		m.raw(`<section class="prose prose-invert max-w-none">` + "\n")
		m.render(ctx, body)
		m.raw("\n</section></article>")
		return m.err
	})
}

// pageContent shows the page's markdown body, or its description when the
// body renders empty.
func pageContent(page devcraft.StaticPage, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		buf := templ.GetBuffer()
		defer templ.ReleaseBuffer(buf)
		if err := body.Render(ctx, buf); err != nil {
			return err
		}

		m := &markup{w: w}
		m.raw(`<div class="mx-auto space-y-4"><h1 class="text-2xl font-bold">`)
		m.text(page.Title)
		m.raw("</h1>\n")
		if buf.Len() > 0 {
			m.raw(`<div class="prose prose-invert max-w-none">` + "\n")
			m.raw(buf.String())
			m.raw("\n</div>")
		} else {
			m.raw(`<p class="text-sm text-slate-300">`)
			m.text(page.Description)
			m.raw("</p>")
		}
		m.raw("</div>")
		return m.err
	})
}

func notFoundContent(meta devcraft.PageMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<section class="space-y-4 text-center"><h1 class="text-3xl font-bold">Page not found</h1>`)
		m.raw(`<p class="text-slate-300">`)
		m.text(meta.Description)
		m.raw(`</p><p><a href="/blog" class="text-indigo-400">Browse the blog</a></p></section>`)
		return m.err
	})
}

func serverErrorContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="space-y-4 text-center"><h1 class="text-3xl font-bold">Something went wrong</h1>`+
			`<p class="text-slate-300">The page could not be rendered. Please try again later.</p>`+
			`<p><a href="/" class="text-indigo-400">Back to the home page</a></p></section>`)
		return err
	})
}
