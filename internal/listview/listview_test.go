package listview

import (
	"testing"
	"time"
)

type row struct {
	ID     int
	Title  string
	Type   string
	Status string
}

func rowFields(r row) []string {
	return []string{r.Title, r.Type}
}

func rowTypeIs(r row, value string) bool {
	return r.Type == value
}

func sampleRows() []row {
	return []row{
		{ID: 1, Title: "Backend Engineer", Type: "full-time", Status: "open"},
		{ID: 2, Title: "Designer", Type: "freelance", Status: "closed"},
		{ID: 3, Title: "Frontend Engineer", Type: "full-time", Status: "open"},
		{ID: 4, Title: "Copywriter", Type: "contract", Status: "open"},
		{ID: 5, Title: "Data Engineer", Type: "full-time", Status: "closed"},
	}
}

func TestApplyComposesSearchFilterPaginate(t *testing.T) {
	rows := sampleRows()
	q := Query{Search: "engineer", Filter: "full-time", Page: 1, PageSize: 2}
	page := Apply(rows, q, rowFields, rowTypeIs)

	if page.FilteredTotal != 3 {
		t.Fatalf("expected 3 filtered rows, got %d", page.FilteredTotal)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page.Items))
	}
	if page.Items[0].ID != 1 || page.Items[1].ID != 3 {
		t.Fatalf("expected ids [1 3], got [%d %d]", page.Items[0].ID, page.Items[1].ID)
	}
	if page.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
	}

	second := Apply(rows, Query{Search: "engineer", Filter: "full-time", Page: 2, PageSize: 2}, rowFields, rowTypeIs)
	if len(second.Items) != 1 || second.Items[0].ID != 5 {
		t.Fatalf("expected last page [5], got %+v", second.Items)
	}
}

func TestApplyEmptySearchMatchesEverything(t *testing.T) {
	rows := sampleRows()
	page := Apply(rows, Query{Page: 1, PageSize: 10}, rowFields, rowTypeIs)
	if len(page.Items) != len(rows) {
		t.Fatalf("expected all %d rows, got %d", len(rows), len(page.Items))
	}
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	rows := sampleRows()
	page := Apply(rows, Query{Search: "DESIGN", Page: 1, PageSize: 10}, rowFields, rowTypeIs)
	if len(page.Items) != 1 || page.Items[0].ID != 2 {
		t.Fatalf("expected row 2, got %+v", page.Items)
	}
}

func TestApplyClampsPage(t *testing.T) {
	rows := sampleRows()

	over := Apply(rows, Query{Page: 99, PageSize: 2}, rowFields, rowTypeIs)
	if over.Page != 3 {
		t.Fatalf("expected page clamped to 3, got %d", over.Page)
	}
	if len(over.Items) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(over.Items))
	}

	under := Apply(rows, Query{Page: -4, PageSize: 2}, rowFields, rowTypeIs)
	if under.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", under.Page)
	}
}

func TestApplyEmptyCollection(t *testing.T) {
	page := Apply(nil, Query{Search: "x", Filter: "y", Page: 5, PageSize: 10}, rowFields, rowTypeIs)
	if page.TotalPages != 1 {
		t.Fatalf("expected totalPages 1 for empty collection, got %d", page.TotalPages)
	}
	if page.Page != 1 {
		t.Fatalf("expected page 1, got %d", page.Page)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(page.Items))
	}
}

func TestQueryWithSearchResetsPage(t *testing.T) {
	q := Query{Search: "old", Filter: "full-time", Page: 4, PageSize: 10}
	if got := q.WithSearch("new"); got.Page != 1 || got.Search != "new" || got.Filter != "full-time" {
		t.Fatalf("unexpected query after WithSearch: %+v", got)
	}
	if got := q.WithFilter("contract"); got.Page != 1 || got.Filter != "contract" || got.Search != "old" {
		t.Fatalf("unexpected query after WithFilter: %+v", got)
	}
}

func TestCountByIgnoresSearchAndFilter(t *testing.T) {
	rows := sampleRows()
	counts := CountBy(rows, func(r row) string { return r.Status })
	if counts["open"] != 3 || counts["closed"] != 2 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	// Stats derive from the raw collection; narrowing the view must not
	// change them.
	narrowed := Filtered(rows, Query{Search: "engineer", Filter: "full-time"}, rowFields, rowTypeIs)
	if len(narrowed) == len(rows) {
		t.Fatal("expected the narrowed view to differ from raw")
	}
	again := CountBy(rows, func(r row) string { return r.Status })
	if again["open"] != 3 || again["closed"] != 2 {
		t.Fatalf("stats drifted after filtering: %v", again)
	}
}

func TestFilterScenario(t *testing.T) {
	rows := []row{
		{ID: 1, Type: "full-time", Status: "open"},
		{ID: 2, Type: "freelance", Status: "closed"},
	}
	page := Apply(rows, Query{Filter: "freelance", Page: 1, PageSize: 10}, rowFields, rowTypeIs)
	if len(page.Items) != 1 || page.Items[0].ID != 2 {
		t.Fatalf("expected visible [2], got %+v", page.Items)
	}
	counts := CountBy(rows, func(r row) string { return r.Status })
	if counts["open"]+counts["closed"] != 2 {
		t.Fatalf("expected stats total 2 regardless of filter, got %v", counts)
	}
}

func TestRecentFirst(t *testing.T) {
	type stamped struct {
		ID int
		At time.Time
	}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []stamped{
		{ID: 1, At: base},
		{ID: 2, At: base.Add(2 * time.Hour)},
		{ID: 3, At: base.Add(time.Hour)},
	}
	recent := RecentFirst(items, func(s stamped) time.Time { return s.At }, 2)
	if len(recent) != 2 || recent[0].ID != 2 || recent[1].ID != 3 {
		t.Fatalf("expected [2 3], got %+v", recent)
	}
	if items[0].ID != 1 {
		t.Fatal("expected input order untouched")
	}
}
