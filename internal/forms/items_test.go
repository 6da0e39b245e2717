package forms

import (
	"reflect"
	"testing"
)

func TestAppendItemTrimsAndDedups(t *testing.T) {
	list := []string{"Go", "SQL"}

	appended, ok := AppendItem(list, "  Docker  ")
	if !ok {
		t.Fatal("expected append to succeed")
	}
	if !reflect.DeepEqual(appended, []string{"Go", "SQL", "Docker"}) {
		t.Fatalf("unexpected list: %v", appended)
	}

	same, ok := AppendItem(appended, "Docker")
	if ok {
		t.Fatal("expected duplicate to be a no-op")
	}
	if len(same) != 3 {
		t.Fatalf("expected length unchanged, got %d", len(same))
	}

	empty, ok := AppendItem(appended, "   ")
	if ok {
		t.Fatal("expected whitespace-only input to be a no-op")
	}
	if len(empty) != 3 {
		t.Fatalf("expected length unchanged, got %d", len(empty))
	}
}

func TestAppendItemDedupIsCaseSensitive(t *testing.T) {
	list := []string{"Free shipping"}
	appended, ok := AppendItem(list, "free shipping")
	if !ok || len(appended) != 2 {
		t.Fatalf("expected case-different item to append, got %v", appended)
	}
}

func TestRemoveItemDropsOneOccurrence(t *testing.T) {
	list := []string{"a", "b", "a"}
	got := RemoveItem(list, "a")
	if !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("expected exactly one occurrence removed, got %v", got)
	}
	if got := RemoveItem(list, "missing"); len(got) != 3 {
		t.Fatalf("expected no-op for missing value, got %v", got)
	}
}

func TestRemoveAt(t *testing.T) {
	list := []string{"a", "b", "c"}
	if got := RemoveAt(list, 1); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("unexpected list: %v", got)
	}
	if got := RemoveAt(list, 7); len(got) != 3 {
		t.Fatalf("expected out-of-range index to be a no-op, got %v", got)
	}
	if got := RemoveAt(list, -1); len(got) != 3 {
		t.Fatalf("expected negative index to be a no-op, got %v", got)
	}
}
