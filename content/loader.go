package content

import (
	"io/fs"
	"os"
	"sort"

	"github.com/labstack/gommon/log"
)

// Logger receives per-file problems that do not abort a listing.
// *log.Logger from gommon satisfies it.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Loader reads posts from a single content directory.
type Loader struct {
	dir    string
	fsys   fs.FS
	logger Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS reads posts from fsys instead of the directory passed to NewLoader.
// The directory name is then only used in error messages.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithLogger sets the logger used for skipped or malformed files.
func WithLogger(logger Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader for the markdown files directly inside dir.
func NewLoader(dir string, opts ...Option) *Loader {
	if dir == "" {
		dir = "."
	}
	l := &Loader{dir: dir}
	for _, opt := range opts {
		opt(l)
	}
	if l.fsys == nil {
		l.fsys = os.DirFS(dir)
	}
	if l.logger == nil {
		l.logger = log.New("content")
	}
	return l
}

// Dir returns the content directory the loader reads.
func (l *Loader) Dir() string {
	return l.dir
}

// ListPosts returns the metadata of every post sorted by date, newest first.
// Dates are compared as strings, so only fixed-width YYYY-MM-DD dates order
// correctly. Posts with equal dates keep their directory order.
func (l *Loader) ListPosts() ([]PostRecord, error) {
	names, err := l.postFiles()
	if err != nil {
		return nil, err
	}
	records := make([]PostRecord, 0, len(names))
	for _, name := range names {
		post, err := l.readPost(name)
		if err != nil {
			l.logger.Warnf("content: skipping %s: %v", name, err)
			continue
		}
		records = append(records, post.PostRecord)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

// GetPost scans the directory and returns the first post whose derived slug
// equals slug. Files are checked in directory order, so when two files share
// a slug the one that sorts first by file name wins.
func (l *Loader) GetPost(slug string) (Post, error) {
	if slug == "" {
		return Post{}, slugRequiredError()
	}
	names, err := l.postFiles()
	if err != nil {
		return Post{}, err
	}
	for _, name := range names {
		post, err := l.readPost(name)
		if err != nil {
			l.logger.Warnf("content: skipping %s: %v", name, err)
			continue
		}
		if post.Slug == slug {
			return post, nil
		}
	}
	return Post{}, notFoundError(slug)
}

// postFiles lists the .md entries of the content root in name order.
func (l *Loader) postFiles() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, rootError(l.dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isPostFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (l *Loader) readPost(name string) (Post, error) {
	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Post{}, readError(name, err)
	}
	fm, body, err := ParseFrontMatter(raw)
	if err != nil {
		l.logger.Warnf("content: %s: %v", name, err)
	} else if err := fm.Validate(); err != nil {
		l.logger.Warnf("content: %s: %v", name, err)
	}
	return Post{
		PostRecord: fm.record(name),
		Content:    string(body),
	}, nil
}
