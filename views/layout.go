package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/devcraft"
)

// layout is the page shell. The page content is passed as templ children.
type layout struct {
	site   devcraft.SiteConfig
	meta   devcraft.PageMeta
	jsonLD string
	nav    []NavLink
	footer []NavLink
	year   int
}

func (l layout) title() string {
	if l.meta.Title == "" || l.meta.Title == l.site.Name {
		return l.site.Name
	}
	return l.meta.Title + " | " + l.site.Name
}

func (l layout) Render(ctx context.Context, w io.Writer) error {
	children := templ.GetChildren(ctx)
	ctx = templ.ClearChildren(ctx)

	ogTitle := l.meta.Title
	if ogTitle == "" {
		ogTitle = l.site.Name
	}
	ogType := l.meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	m := &markup{w: w}
	m.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	m.raw(`<meta charset="utf-8">` + "\n")
	m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	m.raw("<title>")
	m.text(l.title())
	m.raw("</title>\n")
	if l.meta.Description != "" {
		m.raw(`<meta name="description"`)
		m.attr("content", l.meta.Description)
		m.raw(">\n")
	}
	m.raw(`<link rel="canonical"`)
	m.url("href", l.meta.URL)
	m.raw(">\n")
	m.raw(`<meta property="og:title"`)
	m.attr("content", ogTitle)
	m.raw(">\n")
	if l.meta.Description != "" {
		m.raw(`<meta property="og:description"`)
		m.attr("content", l.meta.Description)
		m.raw(">\n")
	}
	m.raw(`<meta property="og:type"`)
	m.attr("content", ogType)
	m.raw(">\n")
	m.raw(`<meta property="og:url"`)
	m.attr("content", l.meta.URL)
	m.raw(">\n")
	m.raw(`<meta property="og:site_name"`)
	m.attr("content", l.site.Name)
	m.raw(">\n")
	if l.meta.Image != "" {
		m.raw(`<meta property="og:image"`)
		m.attr("content", l.meta.Image)
		m.raw(">\n")
	}
	m.raw(`<link rel="alternate" type="application/rss+xml"`)
	m.attr("title", l.site.Name)
	m.raw(` href="/feed.xml">` + "\n")
	m.raw(`<link rel="stylesheet" href="/styles.css">` + "\n")
	// jsonLD comes from json.Marshal, which escapes <, > and &.
	if l.jsonLD != "" {
		m.raw(`<script type="application/ld+json">`)
		m.raw(l.jsonLD)
		m.raw("</script>\n")
	}
	m.raw("</head>\n")

	m.raw(`<body class="min-h-full bg-slate-950 text-slate-100">` + "\n")
	m.raw(`<div class="flex min-h-screen flex-col">` + "\n")
	m.raw(`<header class="border-b border-slate-800"><div class="mx-auto flex max-w-5xl items-center justify-between px-4 py-4">`)
	m.raw(`<a href="/" class="flex items-center gap-2 text-lg font-semibold">`)
	m.text(l.site.Name)
	m.raw("</a>\n")
	m.raw(`<nav class="flex gap-6 text-sm text-slate-300">`)
	for _, link := range l.nav {
		m.raw("<a")
		m.url("href", link.Href)
		if IsActive(link.Href, l.meta.URL) {
			m.raw(` class="font-semibold text-white" aria-current="page"`)
		}
		m.raw(">")
		m.text(link.Label)
		m.raw("</a>")
	}
	m.raw("</nav>\n</div></header>\n")

	m.raw(`<main class="flex-1"><div class="mx-auto max-w-5xl px-4 py-8">` + "\n")
	m.render(ctx, children)
	m.raw("\n</div></main>\n")

	m.raw(`<footer class="border-t border-slate-800"><div class="mx-auto flex max-w-5xl flex-col gap-2 px-4 py-6 text-sm text-slate-400 md:flex-row md:justify-between">`)
	m.raw("<p>&copy; " + strconv.Itoa(l.year) + " ")
	m.text(l.site.Name)
	m.raw(". All rights reserved.</p>")
	m.raw(`<div class="flex gap-4">`)
	for _, link := range l.footer {
		m.raw("<a")
		m.url("href", link.Href)
		m.raw(">")
		m.text(link.Label)
		m.raw("</a>")
	}
	m.raw("</div></div></footer>\n</div>\n</body>\n</html>\n")
	return m.err
}
