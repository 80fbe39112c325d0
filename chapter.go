package notestrip

import "strings"

// ChapterSuffix identifies chapter files by name. Entries without the
// suffix are treated as opaque assets and copied verbatim.
const ChapterSuffix = ".html"

// Chapter represents a single HTML chapter file read from the source
// directory.
type Chapter struct {
	Name    string // file name, e.g. "03-pointers.html"
	Content string // raw HTML text
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "chapter name required")
	}
	if !strings.HasSuffix(c.Name, ChapterSuffix) {
		return Errorf(EINVALID, "chapter name must end in %s", ChapterSuffix)
	}
	return nil
}

// IsChapterName reports whether an entry name designates a chapter file.
func IsChapterName(name string) bool {
	return strings.HasSuffix(name, ChapterSuffix)
}

// Filter removes hidden sections from chapter HTML. Implementations must
// use a structural parse of the document, not a text pattern match, so that
// nested and attribute-reordered markup is handled correctly.
type Filter interface {
	// Filter returns the chapter HTML with every hidden section removed
	// and the number of sections that were removed. Content the parser
	// cannot make sense of passes through with zero removals; it is not
	// an error.
	Filter(html string) (filtered string, removed int, err error)
}
