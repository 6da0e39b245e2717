package forms

import (
	"errors"
	"fmt"
	"sync"

	"opsdash/internal/upstream"
)

// ErrSubmitInFlight is returned when a form submits while a previous
// submission has not settled.
var ErrSubmitInFlight = errors.New("submission already in flight")

// Submission is the per-form single-flight gate. Only one upstream call may
// be in flight per form instance; Begin fails fast instead of queueing.
type Submission struct {
	mu       sync.Mutex
	inFlight bool
}

func (s *Submission) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrSubmitInFlight
	}
	s.inFlight = true
	return nil
}

func (s *Submission) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

func (s *Submission) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// MergeCreated prepends a freshly created record; MergeUpdated replaces the
// matching record by id. Both run only after the upstream acknowledged the
// mutation; there is no optimistic update.
func MergeCreated[T any](collection []T, created T) []T {
	merged := make([]T, 0, len(collection)+1)
	merged = append(merged, created)
	return append(merged, collection...)
}

func MergeUpdated[T any](collection []T, updated T, id func(T) string) []T {
	merged := append([]T(nil), collection...)
	for i, item := range merged {
		if id(item) == id(updated) {
			merged[i] = updated
			return merged
		}
	}
	return merged
}

// RemoveByID drops the record with the given id after a confirmed delete.
func RemoveByID[T any](collection []T, targetID string, id func(T) string) []T {
	merged := make([]T, 0, len(collection))
	for _, item := range collection {
		if id(item) != targetID {
			merged = append(merged, item)
		}
	}
	return merged
}

// UserMessage translates a failed submission into the inline message the
// form renders. The form keeps the admin's input either way.
func UserMessage(err error) string {
	var upstreamErr *upstream.Error
	if !errors.As(err, &upstreamErr) {
		return fmt.Sprintf("Something went wrong: %v", err)
	}
	if upstreamErr.Network {
		return "Could not reach the server. Check your connection and try again."
	}
	switch upstreamErr.Status {
	case 400, 422:
		if upstreamErr.Message != "" {
			return upstreamErr.Message
		}
		return "Please review the highlighted fields and try again."
	case 401:
		return "Your session is no longer valid. Please log in again."
	case 403:
		return "You do not have permission to perform this action."
	case 404:
		return "The requested record was not found."
	case 0:
		return fmt.Sprintf("Something went wrong: %v", upstreamErr)
	}
	if upstreamErr.Status >= 500 {
		return "The server had a problem. Please try again later."
	}
	return fmt.Sprintf("Request failed with status %d.", upstreamErr.Status)
}
