package security

import "net/http"

// BodyLimit caps request payload size.
type BodyLimit struct {
	Max int64
}

// Middleware rejects requests declaring a payload over the limit with HTTP
// 413 and caps streamed bodies via http.MaxBytesReader so reads past the
// limit fail downstream.
func (b BodyLimit) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.Max <= 0 || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}
		if r.ContentLength > b.Max {
			http.Error(w, "request entity too large", http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, b.Max)
		next.ServeHTTP(w, r)
	})
}
