// Package content loads blog posts from a directory of markdown files.
//
// Every call reads the directory again; records are plain values and nothing
// is cached between calls.
package content

// PostRecord is the metadata of a post, as read from its front matter.
// Fields missing from the front matter are left empty.
type PostRecord struct {
	Title       string
	Date        string // sort key, compared as a string
	Description string
	Image       string // site-relative cover image path
	Slug        string
	SourceFile  string
}

// HasImage reports whether the post declares a cover image.
func (p PostRecord) HasImage() bool {
	return p.Image != ""
}

// Post is a PostRecord plus its raw markdown body.
type Post struct {
	PostRecord
	Content string
}
