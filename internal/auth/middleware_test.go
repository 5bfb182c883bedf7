package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uxgrep/uxgrep/internal/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_None(t *testing.T) {
	mw, err := Middleware(config.AuthSettings{Type: config.AuthTypeNone})
	if err != nil {
		t.Fatalf("Middleware failed: %v", err)
	}

	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sse", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMiddleware_Basic(t *testing.T) {
	mw, err := Middleware(config.AuthSettings{
		Type:  config.AuthTypeBasic,
		Basic: config.BasicAuthSettings{Username: "admin", Password: "secret"},
	})
	if err != nil {
		t.Fatalf("Middleware failed: %v", err)
	}
	handler := mw(okHandler())

	tests := []struct {
		name     string
		username string
		password string
		want     int
	}{
		{"valid credentials", "admin", "secret", http.StatusOK},
		{"wrong password", "admin", "wrong", http.StatusUnauthorized},
		{"wrong username", "other", "secret", http.StatusUnauthorized},
		{"no credentials", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sse", nil)
			if tt.username != "" || tt.password != "" {
				req.SetBasicAuth(tt.username, tt.password)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestMiddleware_BasicChallenge(t *testing.T) {
	mw, err := Middleware(config.AuthSettings{
		Type:  config.AuthTypeBasic,
		Basic: config.BasicAuthSettings{Username: "admin", Password: "secret"},
	})
	if err != nil {
		t.Fatalf("Middleware failed: %v", err)
	}

	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sse", nil))
	if got := rec.Header().Get("WWW-Authenticate"); got == "" {
		t.Error("basic auth rejection should set a WWW-Authenticate challenge")
	}
}

func TestMiddleware_APIKey(t *testing.T) {
	mw, err := Middleware(config.AuthSettings{
		Type:    config.AuthTypeAPIKey,
		APIKeys: []string{"key1", "key2"},
	})
	if err != nil {
		t.Fatalf("Middleware failed: %v", err)
	}
	handler := mw(okHandler())

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"first key", "key1", http.StatusOK},
		{"second key", "key2", http.StatusOK},
		{"unknown key", "key3", http.StatusUnauthorized},
		{"missing key", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sse", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestMiddleware_HealthBypass(t *testing.T) {
	mw, err := Middleware(config.AuthSettings{
		Type:    config.AuthTypeAPIKey,
		APIKeys: []string{"key1"},
	})
	if err != nil {
		t.Fatalf("Middleware failed: %v", err)
	}

	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health check should bypass auth, got status %d", rec.Code)
	}
}

func TestMiddleware_InvalidConfig(t *testing.T) {
	tests := []struct {
		name     string
		settings config.AuthSettings
	}{
		{"unknown type", config.AuthSettings{Type: "oauth"}},
		{"basic without credentials", config.AuthSettings{Type: config.AuthTypeBasic}},
		{"apikey without keys", config.AuthSettings{Type: config.AuthTypeAPIKey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Middleware(tt.settings); err == nil {
				t.Error("expected configuration error, got nil")
			}
		})
	}
}
