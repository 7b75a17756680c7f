package middleware

import (
	"fmt"
	"net/http"
)

// NewMaxBodySizeHandler limits request bodies to limit bytes.
//
// A request whose Content-Length already exceeds the limit is rejected with
// 413 before the next handler runs. Otherwise the body is wrapped in
// http.MaxBytesReader, so a handler reading past the limit gets an
// *http.MaxBytesError it can map to 413 itself.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large",
					fmt.Sprintf("request body exceeds %d bytes", limit))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
