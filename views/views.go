// Package views is the default theme: hand-written templ components
// satisfying devcraft.ViewFuncs.
package views

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/devcraft"
	"github.com/eringen/devcraft/content"
)

// NavLink is an entry of the header or footer navigation.
type NavLink struct {
	Href  string
	Label string
}

var footerLinks = []NavLink{
	{"/privacy-policy", "Privacy Policy"},
	{"/terms", "Terms"},
	{"/contact", "Contact"},
}

// New returns the default views for cfg.
func New(cfg devcraft.SiteConfig) devcraft.ViewFuncs {
	t := theme{cfg: cfg, now: time.Now}
	return devcraft.ViewFuncs{
		Home:        t.home,
		BlogIndex:   t.blogIndex,
		Post:        t.post,
		Page:        t.page,
		NotFound:    t.notFound,
		ServerError: t.serverError,
	}
}

type theme struct {
	cfg devcraft.SiteConfig
	now func() time.Time
}

func (t theme) home(latest []content.PostRecord, meta devcraft.PageMeta) templ.Component {
	return t.document(meta, devcraft.WebsiteJsonLD(t.cfg), homeContent(t.cfg, latest))
}

func (t theme) blogIndex(posts []content.PostRecord, meta devcraft.PageMeta) templ.Component {
	return t.document(meta, "", blogContent(t.cfg, posts))
}

func (t theme) post(post content.PostRecord, body templ.Component, meta devcraft.PageMeta) templ.Component {
	return t.document(meta, devcraft.BlogPostingJsonLD(t.cfg, post), postContent(post, body))
}

func (t theme) page(p devcraft.StaticPage, body templ.Component, meta devcraft.PageMeta) templ.Component {
	return t.document(meta, "", pageContent(p, body))
}

func (t theme) notFound(meta devcraft.PageMeta) templ.Component {
	return t.document(meta, "", notFoundContent(meta))
}

func (t theme) serverError(meta devcraft.PageMeta) templ.Component {
	return t.document(meta, "", serverErrorContent())
}

// document renders page inside the layout into a pooled buffer and copies
// it to w only when every part rendered, so a failing markdown body leaves
// w untouched.
func (t theme) document(meta devcraft.PageMeta, jsonLD string, page templ.Component) templ.Component {
	l := layout{
		site:   t.cfg,
		meta:   meta,
		jsonLD: jsonLD,
		nav:    navLinks(),
		footer: footerLinks,
		year:   t.now().Year(),
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		buf := templ.GetBuffer()
		defer templ.ReleaseBuffer(buf)
		if err := l.Render(templ.WithChildren(ctx, page), buf); err != nil {
			return err
		}
		_, err := buf.WriteTo(w)
		return err
	})
}

func navLinks() []NavLink {
	links := []NavLink{{"/blog", "Blog"}}
	for _, p := range devcraft.StaticPages {
		if p.Name == "terms" {
			continue
		}
		links = append(links, NavLink{Href: p.Route, Label: p.Title})
	}
	return links
}
