package httpapi

import (
	"crypto/subtle"
	"net/http"
)

// basicAuth guards the API with HTTP Basic credentials.
// Comparison is constant-time so the middleware does not leak credential
// prefixes through response timing.
func basicAuth(username, password string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok {
			unauthorized(w, "Authentication required")
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		if !userOK || !passOK {
			unauthorized(w, "Invalid credentials")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="Secure Area"`)
	writeError(w, http.StatusUnauthorized, message, "")
}
