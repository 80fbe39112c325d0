// Package goquery implements hidden-section filtering using CSS selector
// queries over a parsed HTML document tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/notestrip"
)

// hiddenSelector matches the block containers marked as hidden. Class
// selectors match whole space-separated class tokens, so class="hide extra"
// matches while class="hidex" does not.
const hiddenSelector = "div.hide"

// Ensure HiddenFilter implements notestrip.Filter at compile time.
var _ notestrip.Filter = (*HiddenFilter)(nil)

// HiddenFilter removes hidden sections from chapter HTML. It operates on a
// parsed document tree rather than the raw text, so nested sections and
// reordered attributes resolve the way a browser would see them.
type HiddenFilter struct{}

// NewHiddenFilter creates a new HiddenFilter.
func NewHiddenFilter() *HiddenFilter {
	return &HiddenFilter{}
}

// Filter parses htmlText, removes every div carrying the class token "hide"
// together with its descendants, and serializes the remaining document.
// Parsing is best-effort: content with no matches passes through unchanged
// apart from re-serialization.
func (f *HiddenFilter) Filter(htmlText string) (string, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return "", 0, notestrip.Errorf(notestrip.EINVALID, "failed to parse HTML: %v", err)
	}

	hidden := doc.Find(hiddenSelector)
	removed := hidden.Length()
	hidden.Remove()

	out, err := serialize(doc, hasHTMLElement(htmlText))
	if err != nil {
		return "", 0, notestrip.Errorf(notestrip.EINTERNAL, "failed to serialize HTML: %v", err)
	}
	return out, removed, nil
}

// serialize renders the filtered document back to text. Sources that
// declare an <html> element round-trip as full documents; fragment sources
// are rendered without the html/head/body wrapper the parser adds, so the
// output matches what the chapter author actually wrote.
func serialize(doc *goquery.Document, fullDocument bool) (string, error) {
	if fullDocument {
		return doc.Html()
	}

	var b strings.Builder
	for _, container := range []string{"head", "body"} {
		inner, err := doc.Find(container).Html()
		if err != nil {
			return "", err
		}
		b.WriteString(inner)
	}
	return b.String(), nil
}

// hasHTMLElement reports whether the source text declares an <html> element.
// The check is a lexical scan, which is enough for well-formed chapters; a
// false positive inside a comment only means the output keeps the parser's
// document wrapper.
func hasHTMLElement(s string) bool {
	ls := strings.ToLower(s)
	for idx := 0; ; {
		i := strings.Index(ls[idx:], "<html")
		if i < 0 {
			return false
		}
		j := idx + i + len("<html")
		if j >= len(ls) {
			return false
		}
		switch ls[j] {
		case '>', ' ', '\t', '\n', '\r', '/':
			return true
		}
		idx = j
	}
}
