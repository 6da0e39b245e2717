// Package handlers maps the admin routes onto the screen services. Handlers
// stay thin: parse the request, call one service method, render the shared
// JSON envelope or the exported workbook.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"opsdash/internal/common"
	"opsdash/internal/export"
	"opsdash/internal/forms"
	"opsdash/internal/http/response"
	"opsdash/internal/listview"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// queryFrom reads the shared list parameters. Page defaults to 1; the page
// size is fixed by configuration, not by the caller.
func queryFrom(r *http.Request, pageSize int) listview.Query {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return listview.Query{
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		Filter:   r.URL.Query().Get("filter"),
		Page:     page,
		PageSize: pageSize,
	}
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewValidationError("invalid request body", nil)
	}
	return nil
}

func idParam(r *http.Request) common.UUID {
	return common.UUID(chi.URLParam(r, "id"))
}

// collectItems folds raw repeated values through the scratch-field append so
// the server applies the same trim and exact-duplicate rules the edit screens
// do.
func collectItems(values []string) []string {
	var items []string
	for _, value := range values {
		items, _ = forms.AppendItem(items, value)
	}
	return items
}

// formFile lifts an optional upload out of a parsed multipart form. A missing
// file yields a part with no name, which the encoder skips.
func formFile(r *http.Request, field string) forms.FilePart {
	file, header, err := r.FormFile(field)
	if err != nil {
		return forms.FilePart{Field: field}
	}
	return forms.FilePart{Field: field, Name: header.Filename, Contents: file}
}

// sendWorkbook builds the spreadsheet in memory before touching the response,
// so a failed build still renders the JSON error envelope.
func sendWorkbook(w http.ResponseWriter, filename string, headers []string, rows [][]any, requireRows bool) {
	var buf bytes.Buffer
	if err := export.Write(&buf, headers, rows, requireRows); err != nil {
		if errors.Is(err, export.ErrNoRows) {
			response.Error(w, common.NewValidationError("No data to export", nil))
			return
		}
		response.Error(w, common.NewError(common.CodeInternal, "failed to build export", err))
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(buf.Bytes())
}
