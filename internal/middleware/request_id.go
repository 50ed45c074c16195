package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// maxInboundRequestIDLen bounds client-supplied IDs so they cannot bloat logs.
const maxInboundRequestIDLen = 128

// RequestID assigns every request an ID, reusing a client-supplied
// X-Request-Id when present and otherwise generating a UUIDv4. The ID is
// stored under chi's RequestIDKey so chimiddleware.GetReqID and
// NewSlogLogger pick it up, and is echoed in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxInboundRequestIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
