// Package listview implements the list derivation every admin screen shares:
// free-text search over extracted fields, a single category/status filter,
// pagination with a clamped page, and stats computed from the raw collection.
package listview

import (
	"sort"
	"strings"
	"time"
)

// Query describes one derivation of a list screen. The zero Filter means "no
// filter". Page is clamped into [1, totalPages] by Apply.
type Query struct {
	Search   string
	Filter   string
	Page     int
	PageSize int
}

// WithSearch returns the query with a new search term and the page reset to
// the first, so an out-of-range page is never shown after narrowing.
func (q Query) WithSearch(term string) Query {
	q.Search = term
	q.Page = 1
	return q
}

// WithFilter returns the query with a new filter value and the page reset.
func (q Query) WithFilter(value string) Query {
	q.Filter = value
	q.Page = 1
	return q
}

// Page is one derived view: the visible slice plus pagination bookkeeping.
// FilteredTotal counts the searched+filtered set, before slicing.
type Page[T any] struct {
	Items         []T
	Page          int
	TotalPages    int
	FilteredTotal int
}

// Apply derives paginate(filter(search(items))). An empty search term matches
// everything; an empty filter value disables the predicate. TotalPages is at
// least 1 even for an empty collection, and len(Items) never exceeds
// q.PageSize.
func Apply[T any](items []T, q Query, searchFields func(T) []string, filterPredicate func(T, string) bool) Page[T] {
	filtered := Filtered(items, q, searchFields, filterPredicate)

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	return Page[T]{
		Items:         filtered[start:end],
		Page:          page,
		TotalPages:    totalPages,
		FilteredTotal: len(filtered),
	}
}

// Filtered returns filter(search(items)) without pagination. Exports consume
// this so a spreadsheet never contains a pagination-only subset.
func Filtered[T any](items []T, q Query, searchFields func(T) []string, filterPredicate func(T, string) bool) []T {
	searched := search(items, q.Search, searchFields)
	if q.Filter == "" || filterPredicate == nil {
		return searched
	}
	filtered := make([]T, 0, len(searched))
	for _, item := range searched {
		if filterPredicate(item, q.Filter) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func search[T any](items []T, term string, searchFields func(T) []string) []T {
	term = strings.ToLower(term)
	if term == "" || searchFields == nil {
		return append([]T(nil), items...)
	}
	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range searchFields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// CountBy computes stats-card counters from the raw collection. Callers must
// pass the unfiltered slice: counts never drift with search or filter.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// RecentFirst returns up to limit items sorted by createdAt descending. The
// input order is preserved for everything else; list order is otherwise the
// order the upstream API returned.
func RecentFirst[T any](items []T, createdAt func(T) time.Time, limit int) []T {
	sorted := append([]T(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})
	if limit >= 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}
