package content

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-slug"
)

const dateLayout = "2006-01-02"

var reSiteRelative = regexp.MustCompile(`^/[^/]`)

// FrontMatter holds the recognised front matter keys of a post file.
// YAML (---), TOML (+++) and JSON (;;;) blocks are accepted. A key that is
// absent decodes to the empty string.
type FrontMatter struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Date        Date   `yaml:"date" toml:"date" json:"date"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Image       string `yaml:"image" toml:"image" json:"image"`
	Slug        string `yaml:"slug" toml:"slug" json:"slug"`
}

// Date is a front matter date kept as written. An unquoted TOML date or
// datetime is formatted back to YYYY-MM-DD.
type Date string

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Date) UnmarshalTOML(v interface{}) error {
	switch v := v.(type) {
	case string:
		*d = Date(v)
	case time.Time:
		*d = Date(v.Format(dateLayout))
	default:
		return fmt.Errorf("date: unsupported TOML value of type %T", v)
	}
	return nil
}

// ParseFrontMatter splits source into its front matter and markdown body.
// A file without front matter yields an empty FrontMatter and the whole
// source as body. On a decode error the source is returned unchanged as body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
	if err != nil {
		return FrontMatter{}, source, fmt.Errorf("parse frontmatter: %w", err)
	}
	return fm, body, nil
}

// Validate checks the values that are present. Empty fields always pass:
// posts are allowed to omit any key.
func (fm FrontMatter) Validate() error {
	err := validation.ValidateStruct(&fm,
		validation.Field(&fm.Date, validation.Date(dateLayout).Error("must be a YYYY-MM-DD date")),
		validation.Field(&fm.Slug, validation.By(urlSafeSlug)),
		validation.Field(&fm.Image, validation.Match(reSiteRelative).Error("must be a site-relative path starting with /")),
	)
	if err != nil {
		return goerrors.FromOzzoValidation(err, "invalid front matter")
	}
	return nil
}

func urlSafeSlug(value any) error {
	s, _ := value.(string)
	if s == "" || slug.IsValid(s) {
		return nil
	}
	return errors.New("must contain only lowercase letters, digits and hyphens")
}

func (fm FrontMatter) record(filename string) PostRecord {
	return PostRecord{
		Title:       fm.Title,
		Date:        string(fm.Date),
		Description: fm.Description,
		Image:       fm.Image,
		Slug:        DeriveSlug(filename, fm.Slug),
		SourceFile:  filename,
	}
}
