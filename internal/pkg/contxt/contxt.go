package contxt

import (
	"context"
	"os"
	"time"
)

// WithTimeout bounds a single remote call. A non-positive timeout, or
// CONTEXT_TEST being set, leaves ctx without a deadline.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 || os.Getenv("CONTEXT_TEST") != "" {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
