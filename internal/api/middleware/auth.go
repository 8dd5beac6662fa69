package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rajaput123/SevaBookingService/internal/api/handlers"
)

// UserIDHeader carries the authenticated devotee ID, set by the API
// gateway after it has verified the session
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// Auth rejects requests without a valid X-User-ID header and stores the
// devotee ID in the request context
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+UserIDHeader+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+UserIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated devotee ID stored by Auth
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
