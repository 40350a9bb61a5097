package urldoc

import (
	"net/url"
	"strings"
)

// Target is the on-disk identity of a URL: the sanitized file stem and the
// extension that decides how its text is extracted.
type Target struct {
	Name string
	Ext  string
}

// Filename returns Name+Ext.
func (t Target) Filename() string {
	return t.Name + t.Ext
}

// ContentType returns the extraction type implied by the extension.
func (t Target) ContentType() ContentType {
	return ContentTypeFromExt(t.Ext)
}

// ParseTarget derives the stored filename for a URL.
//
// The name comes from the last segment of the URL path, falling back to the
// host when the path is empty. The extension is ".pdf" only when that segment
// ends in exactly ".pdf"; every other suffix becomes ".html". The query never
// decides the extension: https://example.com/doc.pdf?v=2 maps to doc.pdf.
// When the segment has no suffix the query is kept in the name, so
// https://example.com/page?id=1 maps to page_id=1.html. Question marks in the
// name become underscores.
func ParseTarget(rawURL string) (Target, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Target{}, Errorf(EINVALID, "empty URL")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	segment := lastSegment(u.Path)
	if segment == "" {
		segment = u.Hostname()
	}
	if segment == "" {
		return Target{}, Errorf(EINVALID, "URL %q has no path or host", rawURL)
	}

	stem, suffix := splitSuffix(segment)
	if suffix == "" && u.RawQuery != "" {
		stem += "?" + querySanitizer.Replace(u.RawQuery)
	}
	return Target{
		Name: strings.ReplaceAll(stem, "?", "_"),
		Ext:  string(ContentTypeFromExt(suffix)),
	}, nil
}

// querySanitizer keeps a query from introducing path separators.
var querySanitizer = strings.NewReplacer("/", "_", "\\", "_")

func lastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	return p
}

// splitSuffix splits a file name at its final dot. A leading dot (".env")
// or a trailing dot ("notes.") does not start a suffix.
func splitSuffix(name string) (stem, suffix string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}
