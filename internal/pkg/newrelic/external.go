package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// WithExternalSegment executes an outbound call within a New Relic external segment
func WithExternalSegment(ctx context.Context, library, procedure, url string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := &newrelic.ExternalSegment{
		StartTime: txn.StartSegmentNow(),
		URL:       url,
		Procedure: procedure,
		Library:   library,
	}
	defer segment.End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}

	return err
}
