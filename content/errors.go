package content

import (
	"errors"
	"fmt"
	"io/fs"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to the errors returned by Loader.
const (
	CodeRootMissing    = "CONTENT_ROOT_MISSING"
	CodeRootUnreadable = "CONTENT_ROOT_UNREADABLE"
	CodeReadFailed     = "POST_READ_FAILED"
	CodePostNotFound   = "POST_NOT_FOUND"
	CodeSlugRequired   = "SLUG_REQUIRED"
)

func rootError(dir string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return goerrors.Wrap(err, goerrors.CategoryOperation, fmt.Sprintf("content root %q does not exist", dir)).
			WithTextCode(CodeRootMissing)
	}
	return goerrors.Wrap(err, goerrors.CategoryOperation, fmt.Sprintf("content root %q is not readable", dir)).
		WithTextCode(CodeRootUnreadable)
}

func readError(name string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryOperation, fmt.Sprintf("read post %q", name)).
		WithTextCode(CodeReadFailed)
}

func notFoundError(slug string) error {
	return goerrors.New(fmt.Sprintf("post not found for slug %q", slug), goerrors.CategoryNotFound).
		WithTextCode(CodePostNotFound)
}

func slugRequiredError() error {
	return goerrors.New("slug is required", goerrors.CategoryBadInput).
		WithTextCode(CodeSlugRequired)
}

// IsNotFound reports whether err is a failed slug lookup.
func IsNotFound(err error) bool {
	return goerrors.IsNotFound(err)
}

// IsInvalidArgument reports whether err was caused by an empty slug.
func IsInvalidArgument(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryBadInput)
}

// IsIOError reports whether err came from reading the content directory.
func IsIOError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryOperation)
}

// IsRootMissing reports whether err means the content directory does not exist.
func IsRootMissing(err error) bool {
	var e *goerrors.Error
	return goerrors.As(err, &e) && e.TextCode == CodeRootMissing
}
