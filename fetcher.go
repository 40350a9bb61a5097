package urldoc

import "context"

// FetchResult describes a resource that was retrieved and stored on disk.
type FetchResult struct {
	URL  string
	Path string

	// StatusCode and ContentType come from the HTTP response. ContentType is
	// informational only; documents are classified by URL suffix.
	StatusCode  int
	ContentType string

	// Bytes is the number of body bytes written to Path.
	Bytes int64
}

// Fetcher retrieves a URL and persists the raw response body.
type Fetcher interface {
	// Fetch issues a single request for url and writes the body to dst,
	// creating or truncating the file. Any network, HTTP or filesystem
	// failure is returned as an error; implementations do not retry.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url, dst string) (*FetchResult, error)
}
