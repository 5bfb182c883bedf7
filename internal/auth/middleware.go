// Package auth provides HTTP authentication middleware for the SSE
// transport of serve mode.
package auth

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/uxgrep/uxgrep/internal/config"
)

// healthPath bypasses authentication so load balancers can probe the server.
const healthPath = "/health"

// Middleware returns an HTTP middleware enforcing the configured auth
// scheme. Unknown or incomplete configurations are rejected up front.
func Middleware(settings config.AuthSettings) (func(http.Handler) http.Handler, error) {
	var authorized func(*http.Request) bool

	switch settings.Type {
	case config.AuthTypeNone, "":
		return func(next http.Handler) http.Handler { return next }, nil
	case config.AuthTypeBasic:
		if settings.Basic.Username == "" || settings.Basic.Password == "" {
			return nil, fmt.Errorf("basic auth requires non-empty username and password")
		}
		authorized = basicCheck(settings.Basic)
	case config.AuthTypeAPIKey:
		if len(settings.APIKeys) == 0 {
			return nil, fmt.Errorf("apikey auth requires at least one API key")
		}
		authorized = apiKeyCheck(settings.APIKeys)
	default:
		return nil, fmt.Errorf("unknown auth type: %s", settings.Type)
	}

	challenge := settings.Type == config.AuthTypeBasic
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == healthPath {
				next.ServeHTTP(w, r)
				return
			}
			if !authorized(r) {
				if challenge {
					w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
				}
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

// basicCheck validates HTTP basic credentials with constant-time compares.
func basicCheck(settings config.BasicAuthSettings) func(*http.Request) bool {
	return func(r *http.Request) bool {
		user, pass, ok := r.BasicAuth()
		if !ok {
			return false
		}
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(settings.Username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(settings.Password)) == 1
		return userMatch && passMatch
	}
}

// apiKeyCheck validates the X-API-Key header against the configured keys.
func apiKeyCheck(apiKeys []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		key := r.Header.Get("X-API-Key")
		if key == "" {
			return false
		}
		for _, validKey := range apiKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(validKey)) == 1 {
				return true
			}
		}
		return false
	}
}
