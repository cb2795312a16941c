package transport

import (
	"context"
	"net/http"
)

// sessionHeader is set by streamable MCP clients once the server assigns a session.
const sessionHeader = "Mcp-Session-Id"

type sessionKey struct{}

// SessionIDFromContext returns the MCP session the request belongs to.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}

// SessionMiddleware records the MCP session id for request logging. Requests
// without one, such as initialize or /api calls, pass through untouched.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(sessionHeader); id != "" {
			r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, id))
		}
		next.ServeHTTP(w, r)
	})
}
