// Package markdown renders post bodies to HTML with goldmark.
//
// Output is trusted: raw HTML in the source is passed through and nothing is
// sanitized, so only author-controlled content should be rendered.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Renderer converts markdown to HTML.
type Renderer interface {
	Render(ctx context.Context, md string) (string, error)
}

// GoldmarkRenderer is a Renderer backed by a goldmark engine. It holds no
// per-call state and can be shared.
type GoldmarkRenderer struct {
	engine goldmark.Markdown
}

type options struct {
	lazyImages bool
	hardWraps  bool
	extensions []string
}

// Option configures a GoldmarkRenderer.
type Option func(*options)

// WithLazyImages renders every image as
// <img src alt loading="lazy" decoding="async" [title]>.
func WithLazyImages() Option {
	return func(o *options) {
		o.lazyImages = true
	}
}

// WithHardWraps turns soft line breaks into <br>.
func WithHardWraps() Option {
	return func(o *options) {
		o.hardWraps = true
	}
}

// WithExtensions selects goldmark extensions by name. Unknown names are
// ignored. Without this option GitHub Flavored Markdown is enabled: tables,
// strikethrough, linkify and task lists.
func WithExtensions(names ...string) Option {
	return func(o *options) {
		o.extensions = append(o.extensions, names...)
	}
}

// New builds a renderer.
func New(opts ...Option) *GoldmarkRenderer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &GoldmarkRenderer{engine: newEngine(o)}
}

// Render converts md to HTML. The context is checked before and after the
// conversion; a cancelled context returns its error and no output.
func (r *GoldmarkRenderer) Render(ctx context.Context, md string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Component returns a templ.Component that renders md with r when the page
// is rendered.
func Component(r Renderer, md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := r.Render(ctx, md)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

func newEngine(o options) goldmark.Markdown {
	rendererOptions := []renderer.Option{
		html.WithUnsafe(),
	}
	if o.hardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if o.lazyImages {
		rendererOptions = append(rendererOptions,
			renderer.WithNodeRenderers(util.Prioritized(&lazyImageRenderer{}, 100)))
	}
	return goldmark.New(
		goldmark.WithExtensions(collectExtensions(o.extensions)...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}
	var out []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ext)
	}
	return out
}
