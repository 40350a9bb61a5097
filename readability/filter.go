// Package readability implements urldoc.ContentFilter with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/urldoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Filter implements urldoc.ContentFilter at compile time.
var _ urldoc.ContentFilter = (*Filter)(nil)

// Filter wraps go-readability to keep only the main content of a page.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// Filter returns the readable article content of rawHTML as HTML.
func (f *Filter) Filter(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", urldoc.Errorf(urldoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", urldoc.Errorf(urldoc.ENOTFOUND, "no readable content found")
	}

	return article.Content, nil
}
