package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDHeader carries the request id back to the caller.
const RequestIDHeader = "X-Request-Id"

// RequestTrace echoes the id assigned by chi's RequestID middleware on the
// response so clients can quote it when reporting problems. It must run after
// middleware.RequestID.
func RequestTrace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestID := middleware.GetReqID(r.Context()); requestID != "" {
			w.Header().Set(RequestIDHeader, requestID)
		}
		next.ServeHTTP(w, r)
	})
}
