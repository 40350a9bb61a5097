package mock

import (
	"context"

	"github.com/fwojciec/urldoc"
)

var _ urldoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of urldoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url, dst string) (*urldoc.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url, dst string) (*urldoc.FetchResult, error) {
	return f.FetchFn(ctx, url, dst)
}
