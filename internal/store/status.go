package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/logging"
)

// Status is the lifecycle of the latest request on a container.
type Status int

const (
	// StatusIdle means no request has been issued yet.
	StatusIdle Status = iota
	// StatusLoading means a request is in flight.
	StatusLoading
	// StatusSucceeded means the latest request completed.
	StatusSucceeded
	// StatusFailed means the latest request failed; see the error message.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ErrSuperseded is returned for a response that arrived after a newer
// request was issued on the same container. Its result was not applied.
var ErrSuperseded = errors.New("superseded by a newer request")

// tracker sequences requests and records status for a container. Callers
// hold mu while touching the container's data.
type tracker struct {
	mu     sync.Mutex
	name   string
	seq    uint64
	status Status
	errMsg string
}

// begin marks a new request in flight and returns its ticket.
func (t *tracker) begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.status = StatusLoading
	t.errMsg = ""
	return t.seq
}

// finish locks the container for the response to ticket. It returns false,
// with the lock released, when a newer request has been issued since. On
// true the caller applies the result and must call t.mu.Unlock.
func (t *tracker) finish(ctx context.Context, ticket uint64, op string, err error) (bool, error) {
	log := logging.FromContext(ctx)
	t.mu.Lock()
	if ticket != t.seq {
		t.mu.Unlock()
		log.Debug().
			Str("component", "store").
			Str("resource", t.name).
			Str("op", op).
			Uint64("ticket", ticket).
			Msg("dropping stale response")
		return false, ErrSuperseded
	}
	if err != nil {
		t.status = StatusFailed
		t.errMsg = api.Message(err, fmt.Sprintf("Failed to %s %s", op, t.name))
		t.mu.Unlock()
		log.Debug().
			Str("component", "store").
			Str("resource", t.name).
			Str("op", op).
			Err(err).
			Msg("request failed")
		return false, err
	}
	t.status = StatusSucceeded
	return true, nil
}
