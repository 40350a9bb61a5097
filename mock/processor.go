package mock

import (
	"context"

	"github.com/fwojciec/urldoc"
)

var _ urldoc.DocumentProcessor = (*DocumentProcessor)(nil)

// DocumentProcessor is a mock implementation of urldoc.DocumentProcessor.
type DocumentProcessor struct {
	ProcessFn func(ctx context.Context, url string) (*urldoc.Record, error)
}

func (p *DocumentProcessor) Process(ctx context.Context, url string) (*urldoc.Record, error) {
	return p.ProcessFn(ctx, url)
}
