package requestdata

import (
	"context"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

type ctxKey struct{}

// RequestData carries the session-resolved caller through the request
// context. Token stays here (not in logs) so signout can revoke it.
type RequestData struct {
	User  *domain.User
	Token string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, ctxKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, ok := ctx.Value(ctxKey{}).(*RequestData)
	if !ok {
		return nil
	}
	return rd
}
