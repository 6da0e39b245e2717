package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"opsdash/internal/domain/job"
)

func TestListDecodesBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/job/get-all" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":"a","title":"Backend"},{"id":"b","title":"Design"}]`))
	}))
	defer server.Close()

	jobs := NewJobs(New(server.URL, server.Client()))
	items, err := jobs.List(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 2 || items[0].Title != "Backend" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestListDecodesDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"a","title":"Backend"}]}`))
	}))
	defer server.Close()

	jobs := NewJobs(New(server.URL, server.Client()))
	items, err := jobs.List(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 1 || items[0].Title != "Backend" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestListDecodesItemsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"a","title":"Backend"}]}`))
	}))
	defer server.Close()

	jobs := NewJobs(New(server.URL, server.Client()))
	items, err := jobs.List(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestListCoercesUnknownShapeToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	}))
	defer server.Close()

	jobs := NewJobs(New(server.URL, server.Client()))
	items, err := jobs.List(context.Background())
	if err != nil {
		t.Fatalf("expected nil error for unknown shape, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %+v", items)
	}
}

func TestStatusErrorCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"title is required"}`))
	}))
	defer server.Close()

	jobs := NewJobs(New(server.URL, server.Client()))
	_, err := jobs.Create(context.Background(), job.Job{})
	var upstreamErr *Error
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if upstreamErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", upstreamErr.Status)
	}
	if upstreamErr.Message != "title is required" {
		t.Fatalf("expected server message, got %q", upstreamErr.Message)
	}
	if upstreamErr.Network {
		t.Fatal("expected non-network error")
	}
}

func TestNetworkFailureIsFlagged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	jobs := NewJobs(New(server.URL, nil))
	_, err := jobs.List(context.Background())
	var upstreamErr *Error
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if !upstreamErr.Network {
		t.Fatal("expected network flag")
	}
	if upstreamErr.Status != 0 {
		t.Fatalf("expected no status for network failure, got %d", upstreamErr.Status)
	}
}

func TestValidatePasswordUnwrapsDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/validatepassword" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"data":{"id":"u1","email":"ops@example.com","first_name":"Ada","role":"Admin"}}`))
	}))
	defer server.Close()

	auth := NewAuth(New(server.URL, server.Client()))
	account, err := auth.ValidatePassword(context.Background(), "ops@example.com", "pw")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if account.Email != "ops@example.com" || account.FirstName != "Ada" {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestDeleteSendsNoBody(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	jobs := NewJobs(New(server.URL, server.Client()))
	if err := jobs.Delete(context.Background(), "abc"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/job/delete/abc" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}
