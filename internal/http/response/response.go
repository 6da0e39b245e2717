// Package response renders the JSON envelopes every handler shares.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"opsdash/internal/common"
)

// ErrorCollector counts rendered errors; the metrics collector satisfies it.
type ErrorCollector interface {
	ObserveError(code string)
}

var errorCollector ErrorCollector

func SetErrorCollector(c ErrorCollector) {
	errorCollector = c
}

type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Error maps a coded error onto its HTTP status and the shared error body.
// Unknown errors render as a generic 500 without leaking internals.
func Error(w http.ResponseWriter, err error) {
	code := common.CodeInternal
	message := "internal error"
	var fields map[string]string

	var coded *common.Error
	if errors.As(err, &coded) {
		code = coded.Code
		message = coded.Message
		fields = coded.Fields
	}
	if errorCollector != nil {
		errorCollector.ObserveError(string(code))
	}
	JSON(w, statusFor(code), errorBody{Error: string(code), Message: message, Fields: fields})
}

func statusFor(code common.ErrorCode) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	case common.CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
