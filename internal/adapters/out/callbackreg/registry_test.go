package callbackreg_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ordermanager/internal/adapters/out/callbackreg"
	"ordermanager/internal/core/domain/model/kernel"
	"ordermanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_IssueMintsDistinctTokens(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	first, err := registry.Issue(ctx)
	require.NoError(t, err)
	second, err := registry.Issue(ctx)
	require.NoError(t, err)

	assert.False(t, first.IsZero())
	assert.False(t, first.IsEqual(second))
}

func TestRegistry_ResumeReleasesWaiter(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	token, err := registry.Issue(ctx)
	require.NoError(t, err)

	type waitResult struct {
		payload []byte
		err     error
	}
	results := make(chan waitResult, 1)
	go func() {
		payload, waitErr := registry.Wait(ctx, token)
		results <- waitResult{payload: payload, err: waitErr}
	}()

	require.NoError(t, registry.Resume(ctx, token, []byte("{}")))

	result := <-results
	require.NoError(t, result.err)
	assert.Equal(t, []byte("{}"), result.payload)
}

func TestRegistry_AllWaitersObserveTheSingleResume(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	token, err := registry.Issue(ctx)
	require.NoError(t, err)

	const waiters = 5
	payloads := make(chan []byte, waiters)
	var ready sync.WaitGroup
	for range waiters {
		ready.Add(1)
		go func() {
			ready.Done()
			payload, waitErr := registry.Wait(ctx, token)
			require.NoError(t, waitErr)
			payloads <- payload
		}()
	}
	ready.Wait()

	require.NoError(t, registry.Resume(ctx, token, []byte("{}")))

	for range waiters {
		assert.Equal(t, []byte("{}"), <-payloads)
	}
}

func TestRegistry_ResumeUnknownToken(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	token, err := kernel.NewCallbackToken("never-issued")
	require.NoError(t, err)

	err = registry.Resume(ctx, token, []byte("{}"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCallbackResumeFailed)
}

func TestRegistry_SecondResumeFails(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	token, err := registry.Issue(ctx)
	require.NoError(t, err)

	require.NoError(t, registry.Resume(ctx, token, []byte("{}")))

	err = registry.Resume(ctx, token, []byte("{}"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCallbackResumeFailed)
}

func TestRegistry_ConcurrentResumesHaveOneWinner(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	token, err := registry.Issue(ctx)
	require.NoError(t, err)

	const racers = 8
	errorsSeen := make(chan error, racers)
	var start sync.WaitGroup
	start.Add(1)
	for range racers {
		go func() {
			start.Wait()
			errorsSeen <- registry.Resume(ctx, token, []byte("{}"))
		}()
	}
	start.Done()

	var wins, failures int
	for range racers {
		if resumeErr := <-errorsSeen; resumeErr == nil {
			wins++
		} else {
			assert.ErrorIs(t, resumeErr, errs.ErrCallbackResumeFailed)
			failures++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, racers-1, failures)
}

func TestRegistry_WaitUnknownToken(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	token, err := kernel.NewCallbackToken("never-issued")
	require.NoError(t, err)

	_, err = registry.Wait(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCallbackResumeFailed)
}

func TestRegistry_WaitHonorsContextCancellation(t *testing.T) {
	registry := callbackreg.NewRegistry()

	token, err := registry.Issue(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = registry.Wait(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRegistry_DiscardReleasesWaitersWithError(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	token, err := registry.Issue(ctx)
	require.NoError(t, err)

	waitErrs := make(chan error, 1)
	go func() {
		_, waitErr := registry.Wait(ctx, token)
		waitErrs <- waitErr
	}()

	// Give the waiter a moment to park before the discard.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, registry.Discard(ctx, token))

	waitErr := <-waitErrs
	require.Error(t, waitErr)
	assert.ErrorIs(t, waitErr, errs.ErrCallbackResumeFailed)
}

func TestRegistry_DiscardUnknownTokenIsNoOp(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	token, err := kernel.NewCallbackToken("never-issued")
	require.NoError(t, err)
	require.NoError(t, registry.Discard(ctx, token))
}

func TestRegistry_DiscardAfterResumeIsNoOp(t *testing.T) {
	ctx := t.Context()
	registry := callbackreg.NewRegistry()

	token, err := registry.Issue(ctx)
	require.NoError(t, err)
	require.NoError(t, registry.Resume(ctx, token, []byte("{}")))
	require.NoError(t, registry.Discard(ctx, token))

	// The delivered payload stays readable after the no-op discard.
	payload, err := registry.Wait(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), payload)
}
