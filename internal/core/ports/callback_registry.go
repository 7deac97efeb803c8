package ports

import (
	"context"

	"ordermanager/internal/core/domain/model/kernel"
)

// CallbackRegistry abstracts "resume a suspended caller". The put-order flow
// issues a token and waits on it; the complete/cancel flow resumes it with a
// payload. Resume is at-most-once: a second resume with the same token, or a
// resume of a token that was never issued, fails with a CallbackResumeError
// and never silently succeeds.
type CallbackRegistry interface {
	// Issue mints a fresh token bound to a new suspension.
	Issue(ctx context.Context) (kernel.CallbackToken, error)

	// Resume releases the waiter bound to the token, delivering the payload.
	// Returns a CallbackResumeError for an unknown or already-consumed token.
	Resume(ctx context.Context, token kernel.CallbackToken, payload []byte) error

	// Wait blocks until the token is resumed or the context ends, returning
	// the payload passed to Resume. Any number of callers may wait on the
	// same token; all observe the single resume.
	Wait(ctx context.Context, token kernel.CallbackToken) ([]byte, error)

	// Discard abandons a token that was issued but never bound to a record,
	// freeing its waiters. Discarding an unknown or consumed token is a no-op.
	Discard(ctx context.Context, token kernel.CallbackToken) error
}
