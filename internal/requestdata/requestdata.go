package requestdata

import (
	"context"

	types "github.com/dealdesk/dealdesk-backend/internal/domain"
)

type ctxKey struct{}

var requestDataKey ctxKey

// RequestData carries the authenticated caller for the lifetime of one
// request. It is attached once by the auth middleware and read-only after
// that; every engine call receives it through the context rather than an
// ambient store.
type RequestData struct {
	UserID      uint
	Role        types.Role
	TokenString string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey)
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}
