package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kratvil/HES-HotelService/internal/api/handlers"
)

// StaffIDHeader заголовок с идентификатором сотрудника отеля
const StaffIDHeader = "X-Staff-ID"

type staffIDKey struct{}

// Auth требует заголовок X-Staff-ID на всех изменяющих маршрутах.
// Идентификатор кладется в контекст запроса.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(StaffIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок "+StaffIDHeader)
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный "+StaffIDHeader)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext возвращает идентификатор сотрудника из контекста
func StaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey{}).(int64)
	return id, ok
}
