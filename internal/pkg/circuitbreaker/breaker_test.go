package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream down")

func failing(ctx context.Context) error { return errUpstream }
func passing(ctx context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cfg := DefaultConfig("certs")
	cfg.FailureThreshold = 2
	cfg.Timeout = time.Hour
	cb := New(cfg, nil)

	assert.Equal(t, errUpstream, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, errUpstream, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	var transitions []State
	cfg := DefaultConfig("certs")
	cfg.FailureThreshold = 1
	cfg.Timeout = 10 * time.Millisecond
	cfg.OnStateChange = func(name string, from, to State) {
		transitions = append(transitions, to)
	}
	cb := New(cfg, nil)

	_ = cb.Execute(context.Background(), failing)
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	assert.NoError(t, cb.Execute(context.Background(), passing))
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cfg := DefaultConfig("certs")
	cfg.FailureThreshold = 1
	cfg.Timeout = 10 * time.Millisecond
	cb := New(cfg, nil)

	_ = cb.Execute(context.Background(), failing)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, errUpstream, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IgnoredFailures(t *testing.T) {
	cfg := DefaultConfig("certs")
	cfg.FailureThreshold = 1
	cfg.IsFailure = func(err error) bool { return err != nil && !errors.Is(err, context.Canceled) }
	cb := New(cfg, nil)

	_ = cb.Execute(context.Background(), func(ctx context.Context) error { return context.Canceled })
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().TotalSuccesses)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(9).String())
}
