package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/qattah/internal/models"
)

// connectError maps a domain error to the Connect code clients see.
func connectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	return connect.NewError(codeOf(err), err)
}

func codeOf(err error) connect.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	case errors.Is(err, models.ErrDependency):
		return connect.CodeInternal
	case errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrInvalidCategory),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrDuplicateParticipant):
		return connect.CodeInvalidArgument
	case errors.Is(err, models.ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, models.ErrUnauthorized):
		return connect.CodePermissionDenied
	default:
		return connect.CodeInternal
	}
}
