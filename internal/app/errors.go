package app

import (
	"errors"

	"opsdash/internal/common"
	"opsdash/internal/forms"
	"opsdash/internal/upstream"
)

// wrapUpstream turns an upstream failure into a coded error whose message is
// already user-facing; the handler renders it inline without further
// translation.
func wrapUpstream(err error) error {
	message := forms.UserMessage(err)
	var upstreamErr *upstream.Error
	if !errors.As(err, &upstreamErr) {
		return common.NewError(common.CodeInternal, message, err)
	}
	if upstreamErr.Network {
		return common.NewError(common.CodeUpstream, message, err)
	}
	switch upstreamErr.Status {
	case 400, 422:
		return common.NewError(common.CodeValidation, message, err)
	case 401:
		return common.NewError(common.CodeUnauthorized, message, err)
	case 403:
		return common.NewError(common.CodeForbidden, message, err)
	case 404:
		return common.NewError(common.CodeNotFound, message, err)
	}
	return common.NewError(common.CodeUpstream, message, err)
}
