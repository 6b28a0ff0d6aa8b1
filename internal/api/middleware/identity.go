package middleware

import (
	"context"
	"net/http"
)

// IdentityHeader carries the caller-asserted participant name. There is no
// cryptographic authentication: the trust boundary is the transport, and
// every operation re-checks the name against the participant store.
const IdentityHeader = "User"

type contextKey string

const identityContextKey contextKey = "identity"

// Identity extracts the asserted identity header into the request context.
// An absent header is an anonymous caller; handlers decide whether that is
// acceptable for their operation.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), identityContextKey, r.Header.Get(IdentityHeader))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity returns the asserted identity from the request context,
// or the empty string for anonymous callers
func GetIdentity(ctx context.Context) string {
	identity, _ := ctx.Value(identityContextKey).(string)
	return identity
}
