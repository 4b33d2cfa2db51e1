package content

import (
	"path"
	"strings"
)

const postExt = ".md"

// DeriveSlug returns the slug for a post file. A non-blank front matter slug
// wins; otherwise the file name without its ".md" extension is used.
func DeriveSlug(filename, frontmatterSlug string) string {
	if s := strings.TrimSpace(frontmatterSlug); s != "" {
		return s
	}
	return strings.TrimSuffix(path.Base(filename), postExt)
}

func isPostFile(name string) bool {
	return strings.HasSuffix(name, postExt)
}
