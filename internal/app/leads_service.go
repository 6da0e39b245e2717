package app

import (
	"context"

	"opsdash/internal/domain/lead"
	"opsdash/internal/listview"
)

// LeadsService derives the ebook lead screen. Leads are read-only; the only
// mutations are the view itself and the spreadsheet export.
type LeadsService struct {
	api    EbooksAPI
	logger Logger
}

func NewLeadsService(api EbooksAPI, logger Logger) *LeadsService {
	return &LeadsService{api: api, logger: logger}
}

type LeadStats struct {
	Total  int            `json:"total"`
	ByBook map[string]int `json:"by_book"`
}

type LeadListView struct {
	Leads      []lead.Lead `json:"leads"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
	Filtered   int         `json:"filtered"`
	Stats      LeadStats   `json:"stats"`
}

func leadSearchFields(l lead.Lead) []string {
	return []string{l.Username, l.Email, l.Phone, l.Book.Title}
}

func leadStats(raw []lead.Lead) LeadStats {
	return LeadStats{
		Total:  len(raw),
		ByBook: listview.CountBy(raw, func(l lead.Lead) string { return l.Book.Title }),
	}
}

// Overview applies the date range before the shared search/paginate
// derivation; stats still come from the raw collection.
func (s *LeadsService) Overview(ctx context.Context, q listview.Query, dates listview.DateRange) (*LeadListView, error) {
	raw, err := s.api.Leads(ctx)
	if err != nil {
		return nil, wrapUpstream(err)
	}
	page := listview.Apply(inDateRange(raw, dates), q, leadSearchFields, nil)
	return &LeadListView{
		Leads:      page.Items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Filtered:   page.FilteredTotal,
		Stats:      leadStats(raw),
	}, nil
}

// ExportRows returns the filtered (never paginated) set shaped for the
// spreadsheet, in upstream order.
func (s *LeadsService) ExportRows(ctx context.Context, q listview.Query, dates listview.DateRange) ([]string, [][]any, error) {
	raw, err := s.api.Leads(ctx)
	if err != nil {
		return nil, nil, wrapUpstream(err)
	}
	filtered := listview.Filtered(inDateRange(raw, dates), q, leadSearchFields, nil)
	headers := []string{"Username", "Email", "Phone", "Book", "Created At"}
	rows := make([][]any, 0, len(filtered))
	for _, l := range filtered {
		rows = append(rows, []any{l.Username, l.Email, l.Phone, l.Book.Title, l.CreatedAt.Format("2006-01-02 15:04:05")})
	}
	return headers, rows, nil
}

func inDateRange(raw []lead.Lead, dates listview.DateRange) []lead.Lead {
	if dates.IsZero() {
		return raw
	}
	matched := make([]lead.Lead, 0, len(raw))
	for _, l := range raw {
		if dates.Contains(l.CreatedAt) {
			matched = append(matched, l)
		}
	}
	return matched
}
