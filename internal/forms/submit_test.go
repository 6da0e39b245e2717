package forms

import (
	"errors"
	"strings"
	"testing"

	"opsdash/internal/upstream"
)

func TestSubmissionSingleFlight(t *testing.T) {
	var s Submission
	if err := s.Begin(); err != nil {
		t.Fatalf("expected first begin to succeed, got %v", err)
	}
	if err := s.Begin(); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected in-flight error, got %v", err)
	}
	if !s.InFlight() {
		t.Fatal("expected in-flight state")
	}
	s.End()
	if err := s.Begin(); err != nil {
		t.Fatalf("expected begin after end to succeed, got %v", err)
	}
}

type record struct {
	ID    string
	Title string
}

func recordID(r record) string { return r.ID }

func TestMergeCreatedPrepends(t *testing.T) {
	collection := []record{{ID: "1"}, {ID: "2"}}
	merged := MergeCreated(collection, record{ID: "3"})
	if len(merged) != 3 || merged[0].ID != "3" || merged[1].ID != "1" {
		t.Fatalf("expected new record first, got %+v", merged)
	}
	if len(collection) != 2 {
		t.Fatal("expected original collection untouched")
	}
}

func TestMergeUpdatedReplacesByID(t *testing.T) {
	collection := []record{{ID: "1", Title: "old"}, {ID: "2"}}
	merged := MergeUpdated(collection, record{ID: "1", Title: "new"}, recordID)
	if merged[0].Title != "new" {
		t.Fatalf("expected replacement, got %+v", merged)
	}
	if merged[1].ID != "2" || len(merged) != 2 {
		t.Fatalf("expected other rows untouched, got %+v", merged)
	}
	if collection[0].Title != "old" {
		t.Fatal("expected original collection untouched")
	}
}

func TestRemoveByID(t *testing.T) {
	collection := []record{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	merged := RemoveByID(collection, "2", recordID)
	if len(merged) != 2 || merged[0].ID != "1" || merged[1].ID != "3" {
		t.Fatalf("unexpected collection: %+v", merged)
	}
}

func TestUserMessageTable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"validation with message", &upstream.Error{Status: 400, Message: "email is invalid"}, "email is invalid"},
		{"validation without message", &upstream.Error{Status: 422}, "review the highlighted fields"},
		{"auth", &upstream.Error{Status: 401}, "log in again"},
		{"permission", &upstream.Error{Status: 403}, "permission"},
		{"not found", &upstream.Error{Status: 404}, "not found"},
		{"server", &upstream.Error{Status: 503}, "try again later"},
		{"network", &upstream.Error{Network: true, Cause: errors.New("refused")}, "connection"},
		{"other status", &upstream.Error{Status: 418}, "status 418"},
		{"client-side", errors.New("boom"), "boom"},
	}
	for _, tc := range cases {
		got := UserMessage(tc.err)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("%s: expected message containing %q, got %q", tc.name, tc.want, got)
		}
	}
}
