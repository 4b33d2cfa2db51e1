package markdown

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func render(t *testing.T, r *GoldmarkRenderer, input string) string {
	t.Helper()
	got, err := r.Render(context.Background(), input)
	if err != nil {
		t.Fatalf("Render(%q) failed: %v", input, err)
	}
	return got
}

func TestRenderInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
		{"use `fmt.Println` here", "use <code>fmt.Println</code> here"},
		{"`**not bold**`", "<code>**not bold**</code>"},
		{"~~gone~~", "<del>gone</del>"},
	}
	r := New()
	for _, tt := range tests {
		got := render(t, r, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderLinkWithUnderscoresInURL(t *testing.T) {
	input := "[Wikipedia](https://en.wikipedia.org/wiki/Some_Article_Title)"
	got := render(t, New(), input)
	want := `<a href="https://en.wikipedia.org/wiki/Some_Article_Title">Wikipedia</a>`
	if !strings.Contains(got, want) {
		t.Errorf("Render(%q)\n  got:  %q\n  want: %q", input, got, want)
	}
}

func TestRenderHeadingsGetIDs(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", `<h1 id="heading-1">Heading 1</h1>`},
		{"## Heading 2", `<h2 id="heading-2">Heading 2</h2>`},
		{"### Heading 3", `<h3 id="heading-3">Heading 3</h3>`},
	}
	r := New()
	for _, tt := range tests {
		got := render(t, r, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderCodeBlockWithLanguage(t *testing.T) {
	input := "```go\nfmt.Println(\"hello\")\n```"
	got := render(t, New(), input)
	if !strings.Contains(got, `<pre><code class="language-go">`) {
		t.Errorf("code block should have language-go class: %q", got)
	}
	if !strings.Contains(got, "fmt.Println(&quot;hello&quot;)") {
		t.Errorf("code block content should be escaped: %q", got)
	}
}

func TestRenderCodeBlockWithoutLanguage(t *testing.T) {
	got := render(t, New(), "```\nplain code\n```")
	if !strings.Contains(got, "<pre><code>plain code") {
		t.Errorf("unexpected plain code block: %q", got)
	}
	if strings.Contains(got, "language-") {
		t.Errorf("code block without language should not have a class: %q", got)
	}
}

func TestRenderLists(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"- item 1\n- item 2", []string{"<ul>", "<li>item 1</li>", "<li>item 2</li>", "</ul>"}},
		{"1. first\n2. second", []string{"<ol>", "<li>first</li>", "<li>second</li>", "</ol>"}},
		{"1. item one\n2. item two\n\nsome text", []string{"</ol>", "<p>some text</p>"}},
		{"- [x] done\n- [ ] todo", []string{`type="checkbox"`, "checked"}},
	}
	r := New()
	for _, tt := range tests {
		got := render(t, r, tt.input)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("Render(%q) = %q, missing %q", tt.input, got, w)
			}
		}
	}
}

func TestRenderTable(t *testing.T) {
	got := render(t, New(), "| a | b |\n|---|---|\n| 1 | 2 |\n")
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>1</td>") {
		t.Errorf("expected a table: %q", got)
	}
}

func TestRenderPassesRawHTML(t *testing.T) {
	input := `<div class="note">kept</div>`
	got := render(t, New(), input)
	if !strings.Contains(got, input) {
		t.Errorf("raw HTML should pass through: %q", got)
	}
}

func TestRenderDefaultImage(t *testing.T) {
	got := render(t, New(), `![alt text](img.png "a title")`)
	if !strings.Contains(got, `<img src="img.png" alt="alt text" title="a title"`) {
		t.Errorf("unexpected default image output: %q", got)
	}
	if strings.Contains(got, "loading=") {
		t.Errorf("default renderer should not add loading: %q", got)
	}
}

func TestRenderLazyImage(t *testing.T) {
	r := New(WithLazyImages())
	got := render(t, r, `![alt text](img.png "a title")`)
	want := `<img src="img.png" alt="alt text" loading="lazy" decoding="async" title="a title" />`
	if !strings.Contains(got, want) {
		t.Errorf("lazy image\n  got:  %q\n  want: %q", got, want)
	}
}

func TestRenderLazyImageWithoutAltOrTitle(t *testing.T) {
	got := render(t, New(WithLazyImages()), "![](img.png)")
	want := `<img src="img.png" alt="" loading="lazy" decoding="async" />`
	if !strings.Contains(got, want) {
		t.Errorf("lazy image\n  got:  %q\n  want: %q", got, want)
	}
	if strings.Contains(got, "title=") {
		t.Errorf("image without title should not have a title attribute: %q", got)
	}
}

func TestRenderLazyImageEmptyTitle(t *testing.T) {
	got := render(t, New(WithLazyImages()), `![a](x.png "")`)
	want := `<img src="x.png" alt="a" loading="lazy" decoding="async" />`
	if !strings.Contains(got, want) {
		t.Errorf("lazy image\n  got:  %q\n  want: %q", got, want)
	}
	if strings.Contains(got, "title=") {
		t.Errorf("empty title should not produce a title attribute: %q", got)
	}
}

func TestRenderLazyImageAltText(t *testing.T) {
	tests := []struct {
		input string
		alt   string
	}{
		{"![an *emphasised* word](x.png)", `alt="an emphasised word"`},
		{`![say "hi"](x.png)`, `alt="say &quot;hi&quot;"`},
		{"![a `code` bit](x.png)", `alt="a code bit"`},
	}
	r := New(WithLazyImages())
	for _, tt := range tests {
		got := render(t, r, tt.input)
		if !strings.Contains(got, tt.alt) {
			t.Errorf("Render(%q) = %q, want %s", tt.input, got, tt.alt)
		}
	}
}

func TestRenderLazyImageEscapesDestination(t *testing.T) {
	got := render(t, New(WithLazyImages()), "![x](</images/a b.png?w=1&h=2>)")
	if !strings.Contains(got, `src="/images/a%20b.png?w=1&amp;h=2"`) {
		t.Errorf("destination should be URL- and HTML-escaped: %q", got)
	}
}

func TestRenderLazyImageInsideLink(t *testing.T) {
	got := render(t, New(WithLazyImages()), "[![logo](/logo.png)](https://example.com)")
	if !strings.Contains(got, `<a href="https://example.com"><img src="/logo.png" alt="logo" loading="lazy" decoding="async" /></a>`) {
		t.Errorf("linked image: %q", got)
	}
}

func TestWithExtensions(t *testing.T) {
	plain := render(t, New(WithExtensions("footnote")), "~~gone~~")
	if strings.Contains(plain, "<del>") {
		t.Errorf("strikethrough should be off: %q", plain)
	}
	struck := render(t, New(WithExtensions("Strikethrough", "unknown")), "~~gone~~")
	if !strings.Contains(struck, "<del>gone</del>") {
		t.Errorf("strikethrough should be on: %q", struck)
	}
}

func TestWithHardWraps(t *testing.T) {
	soft := render(t, New(), "one\ntwo")
	if strings.Contains(soft, "<br") {
		t.Errorf("soft break should not become <br>: %q", soft)
	}
	hard := render(t, New(WithHardWraps()), "one\ntwo")
	if !strings.Contains(hard, "<br") {
		t.Errorf("hard wraps should emit <br>: %q", hard)
	}
}

func TestRenderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := New().Render(ctx, "# hi")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Render error = %v, want context.Canceled", err)
	}
	if got != "" {
		t.Errorf("cancelled render returned output %q", got)
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	c := Component(New(WithLazyImages()), "Hello ![](a.png)")
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Component.Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), `loading="lazy"`) {
		t.Errorf("component should use the given renderer: %q", buf.String())
	}
}

func TestComponentPropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := Component(New(), "text").Render(ctx, &buf)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Component.Render error = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}
