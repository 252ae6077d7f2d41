package services

import (
	"context"
	"errors"

	"github.com/dealdesk/dealdesk-backend/internal/access"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/apierr"
	"github.com/dealdesk/dealdesk-backend/internal/requestdata"
)

// ListResult is the payload every list operation returns.
type ListResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// caller returns the request identity. The auth middleware attaches it to
// every protected route, so an empty carrier here means broken wiring, not
// a user mistake.
func caller(ctx context.Context) (*requestdata.RequestData, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == 0 {
		return nil, apierr.Unauthenticated(errors.New("no user in request context"))
	}
	return rd, nil
}

// guard resolves the caller and evaluates the role policy before any
// repository access happens.
func guard(ctx context.Context, op access.Operation) (*requestdata.RequestData, error) {
	rd, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(rd.Role, op); err != nil {
		return nil, apierr.Forbidden(err)
	}
	return rd, nil
}
