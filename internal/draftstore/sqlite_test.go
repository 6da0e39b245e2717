package draftstore

import (
	"context"
	"path/filepath"
	"testing"

	"opsdash/internal/common"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "drafts.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "ops@example.com", `{"title":"WIP"}`); err != nil {
		t.Fatalf("save: %v", err)
	}
	draft, err := store.Get(ctx, "ops@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if draft.Payload != `{"title":"WIP"}` {
		t.Fatalf("unexpected payload %q", draft.Payload)
	}
	if draft.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at to be set")
	}
}

func TestSaveOverwritesPerEmail(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "ops@example.com", `{"v":1}`); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, "ops@example.com", `{"v":2}`); err != nil {
		t.Fatalf("save again: %v", err)
	}
	draft, err := store.Get(ctx, "ops@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if draft.Payload != `{"v":2}` {
		t.Fatalf("expected latest payload, got %q", draft.Payload)
	}
}

func TestGetMissingDraft(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Get(context.Background(), "nobody@example.com")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "ops@example.com", `{}`); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "ops@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "ops@example.com"); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}
