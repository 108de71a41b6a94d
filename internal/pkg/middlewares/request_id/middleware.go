// Package request_id помечает каждый запрос идентификатором: берёт его
// из X-Request-ID или выдаёт новый UUIDv4.
package request_id

import (
	"context"
	"net/http"

	"github.com/gofrs/uuid"
)

const (
	Header = "X-Request-ID"

	maxLength = 128
)

type ctxKey struct{}

func Middleware(gen uuid.Generator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if id == "" || len(id) > maxLength {
				id = newID(gen)
			}

			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext возвращает пустую строку, если запрос не прошёл через Middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func newID(gen uuid.Generator) string {
	id, err := gen.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}
