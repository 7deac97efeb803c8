// Package callbackreg implements the callback registry in process. Tokens
// are minted as UUIDs; a resume closes a broadcast channel so every waiter
// on the token observes the single delivery.
package callbackreg

import (
	"context"
	"sync"

	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/pkg/errs"

	"github.com/google/uuid"
)

type suspension struct {
	done     chan struct{}
	payload  []byte
	err      error
	consumed bool
}

// Registry tracks live suspensions keyed by token. Consumed suspensions stay
// registered so a duplicate resume is detected as an error instead of
// silently minting a second delivery.
type Registry struct {
	mu          sync.Mutex
	suspensions map[string]*suspension
}

// NewRegistry creates an empty callback registry.
func NewRegistry() *Registry {
	return &Registry{suspensions: make(map[string]*suspension)}
}

// Issue mints a fresh token bound to a new suspension.
func (r *Registry) Issue(_ context.Context) (kernel.CallbackToken, error) {
	token, err := kernel.NewCallbackToken(uuid.NewString())
	if err != nil {
		return kernel.CallbackToken{}, err
	}

	r.mu.Lock()
	r.suspensions[token.String()] = &suspension{done: make(chan struct{})}
	r.mu.Unlock()

	return token, nil
}

// Resume delivers the payload to the token's waiters, exactly once. Resuming
// an unknown or already-consumed token fails loudly.
func (r *Registry) Resume(_ context.Context, token kernel.CallbackToken, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	susp, ok := r.suspensions[token.String()]
	if !ok {
		return errs.NewCallbackResumeError(token.String(), "token was never issued")
	}
	if susp.consumed {
		return errs.NewCallbackResumeError(token.String(), "token already consumed")
	}

	susp.payload = payload
	susp.consumed = true
	close(susp.done)
	return nil
}

// Wait blocks until the token is resumed, discarded, or the context ends.
func (r *Registry) Wait(ctx context.Context, token kernel.CallbackToken) ([]byte, error) {
	r.mu.Lock()
	susp, ok := r.suspensions[token.String()]
	r.mu.Unlock()
	if !ok {
		return nil, errs.NewCallbackResumeError(token.String(), "token was never issued")
	}

	select {
	case <-susp.done:
		return susp.payload, susp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Discard abandons a token that never got bound to a record. Waiters are
// released with an error; an unknown or consumed token is a no-op.
func (r *Registry) Discard(_ context.Context, token kernel.CallbackToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	susp, ok := r.suspensions[token.String()]
	if !ok || susp.consumed {
		return nil
	}

	susp.err = errs.NewCallbackResumeError(token.String(), "token was discarded")
	susp.consumed = true
	close(susp.done)
	delete(r.suspensions, token.String())
	return nil
}
