// Package trafilatura implements urldoc.ContentFilter with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/urldoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Filter implements urldoc.ContentFilter at compile time.
var _ urldoc.ContentFilter = (*Filter)(nil)

// Filter wraps go-trafilatura to keep only the main content of a page.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// Filter returns the main content of rawHTML as HTML.
// Returns ENOTFOUND when no main content can be identified.
func (f *Filter) Filter(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", urldoc.Errorf(urldoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}
	if result.ContentNode == nil {
		return "", urldoc.Errorf(urldoc.ENOTFOUND, "no main content found")
	}

	return renderNode(result.ContentNode)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
