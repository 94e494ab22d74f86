package middleware

import (
	"net/http"

	"github.com/2beens/fittrack/pkg"
)

// RequireOwner rejects requests without an owner id header.
func RequireOwner() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodOptions && pkg.OwnerID(r) == "" {
				http.Error(w, "error, missing "+pkg.OwnerIDHeader+" header", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
