package markdown

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// lazyImageRenderer replaces goldmark's image output. Title is emitted only
// when the source gives one; alt is always present, possibly empty.
type lazyImageRenderer struct{}

func (r *lazyImageRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindImage, r.renderImage)
}

func (r *lazyImageRenderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Image)
	_, _ = w.WriteString(`<img src="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	_, _ = w.WriteString(`" alt="`)
	_, _ = w.Write(altText(n, source))
	_, _ = w.WriteString(`" loading="lazy" decoding="async"`)
	if len(n.Title) > 0 {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_ = w.WriteByte('"')
	}
	_, _ = w.WriteString(" />")
	return ast.WalkSkipChildren, nil
}

// altText flattens the image's inline children to escaped plain text.
func altText(n ast.Node, source []byte) []byte {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s, ok := c.(*ast.String); ok && s.IsCode() {
			buf = append(buf, s.Text(source)...)
			continue
		}
		if c.HasChildren() {
			buf = append(buf, altText(c, source)...)
			continue
		}
		buf = append(buf, util.EscapeHTML(c.Text(source))...)
	}
	return buf
}
