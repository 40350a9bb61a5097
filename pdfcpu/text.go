// Package pdfcpu implements urldoc.TextExtractor for PDF documents using
// the pdfcpu library.
//
// Strings shown in simple fonts are decoded as WinAnsi. ToUnicode CMaps are
// not applied, so a simple font with a custom encoding may yield wrong
// characters. Text shown in composite (Type0) fonts, such as Identity-H
// encoded CID fonts, is dropped rather than decoded; a page whose only text
// is in composite fonts is reported as a page error.
package pdfcpu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/fwojciec/urldoc"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Ensure TextExtractor implements urldoc.TextExtractor at compile time.
var _ urldoc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts text from PDF files page by page. Pages that fail
// are skipped and reported in the result.
type TextExtractor struct {
	conf *model.Configuration
}

// disableConfigDir keeps pdfcpu from creating a config directory under $HOME.
var disableConfigDir sync.Once

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &TextExtractor{conf: conf}
}

// ExtractText opens the PDF at path and returns the cleaned text of all
// readable pages as a single line.
func (e *TextExtractor) ExtractText(path string, ct urldoc.ContentType) (*urldoc.ExtractResult, error) {
	if ct != urldoc.ContentTypePDF {
		return nil, urldoc.Errorf(urldoc.EINVALID, "unsupported content type %q", ct)
	}

	ctx, err := e.read(path)
	if err != nil {
		return nil, err
	}

	result := joinPages(ctx.PageCount, func(pageNr int) (string, error) {
		return pageText(ctx, pageNr)
	})
	result.Text = CleanText(result.Text)
	return result, nil
}

func (e *TextExtractor) read(path string) (ctx *model.Context, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			ctx, err = nil, fmt.Errorf("pdfcpu read: panic: %v", r)
		}
	}()

	ctx, err = api.ReadValidateAndOptimize(f, e.conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}
	return ctx, nil
}

// pageText returns the decoded text of a single page.
func pageText(ctx *model.Context, pageNr int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("panic: %v", r)
		}
	}()

	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	composite, err := compositeFonts(ctx, pageNr)
	if err != nil {
		return "", err
	}
	return pageContentText(data, composite)
}

var errCompositeFontText = errors.New("text is only in composite fonts, which are not decoded")

// pageContentText decodes a content stream, failing when every text
// operator on the page used a composite font.
func pageContentText(data []byte, composite map[string]bool) (string, error) {
	text, skipped := decodeContent(data, composite)
	if skipped > 0 && strings.TrimSpace(text) == "" {
		return "", errCompositeFontText
	}
	return text, nil
}

// compositeFonts returns the resource names of the Type0 fonts available
// to a page.
func compositeFonts(ctx *model.Context, pageNr int) (map[string]bool, error) {
	_, _, inh, err := ctx.PageDict(pageNr, true)
	if err != nil {
		return nil, err
	}
	if inh == nil || inh.Resources == nil {
		return nil, nil
	}
	obj, ok := inh.Resources.Find("Font")
	if !ok {
		return nil, nil
	}
	fonts, err := ctx.DereferenceDict(obj)
	if err != nil || fonts == nil {
		return nil, err
	}

	composite := make(map[string]bool)
	for id, o := range fonts {
		font, err := ctx.DereferenceDict(o)
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", id, err)
		}
		if subtype := font.NameEntry("Subtype"); subtype != nil && *subtype == "Type0" {
			composite[id] = true
		}
	}
	return composite, nil
}

// joinPages concatenates the text of pages 1..count with newlines,
// skipping pages whose text cannot be read.
func joinPages(count int, page func(pageNr int) (string, error)) *urldoc.ExtractResult {
	result := &urldoc.ExtractResult{Pages: count}

	var b strings.Builder
	for pageNr := 1; pageNr <= count; pageNr++ {
		text, err := page(pageNr)
		if err != nil {
			result.PageErrors = append(result.PageErrors, urldoc.PageError{Page: pageNr, Err: err})
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(text)
	}

	result.Text = b.String()
	return result
}

var spaceRunRe = regexp.MustCompile(` +`)

// CleanText flattens extracted PDF text into a single line: commas become
// spaces, line breaks become spaces, and runs of spaces collapse to one.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, ",", " ")
	text = strings.Join(splitLines(text), " ")
	return spaceRunRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
