package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLog(t *testing.T) {
	// Just verify it doesn't panic
	s := &Settings{
		Search:       SearchSettings{MaxResults: 3},
		DesignSystem: DesignSystemSettings{ResultsPerCategory: 3},
	}
	Log(s) // Should not panic
}

func TestLogWithLogger_EmbeddedDataDir(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Search:       SearchSettings{MaxResults: 3},
		DesignSystem: DesignSystemSettings{ResultsPerCategory: 3},
	}

	LogWithLogger(s, logger)

	output := buf.String()
	if !strings.Contains(output, "(embedded)") {
		t.Error("Expected '(embedded)' for an empty data dir")
	}
	if !strings.Contains(output, "max_results") {
		t.Error("Expected 'max_results' in log output")
	}
}

func TestLogWithLogger_CustomDataDir(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Search: SearchSettings{DataDir: "/srv/tables", MaxResults: 3},
	}

	LogWithLogger(s, logger)

	if !strings.Contains(buf.String(), "/srv/tables") {
		t.Error("Expected the data dir in log output")
	}
}

func TestLogServe_StdioTransport(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Serve: ServeSettings{Transport: "stdio", Host: "localhost", Port: 8080},
	}

	LogServe(s, logger)

	output := buf.String()
	if !strings.Contains(output, "transport") {
		t.Error("Expected 'transport' in log output")
	}
	// stdio transport should not log host/port
	if strings.Contains(output, "host") {
		t.Error("Expected no 'host' in log output for stdio transport")
	}
}

func TestLogServe_SSETransport(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Serve: ServeSettings{Transport: "sse", Host: "localhost", Port: 8080},
	}

	LogServe(s, logger)

	output := buf.String()
	if !strings.Contains(output, "host") {
		t.Error("Expected 'host' in log output for SSE transport")
	}
	if !strings.Contains(output, "port") {
		t.Error("Expected 'port' in log output for SSE transport")
	}
}

func TestLogServe_BasicAuth(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Serve: ServeSettings{
			Transport: "stdio",
			Auth: AuthSettings{
				Type:  AuthTypeBasic,
				Basic: BasicAuthSettings{Username: "admin", Password: "secret"},
			},
		},
	}

	LogServe(s, logger)

	output := buf.String()
	if !strings.Contains(output, "admin") {
		t.Error("Expected username in log output")
	}
	if !strings.Contains(output, "****") {
		t.Error("Expected masked password in log output")
	}
	if strings.Contains(output, "secret") {
		t.Error("Password should be masked, not shown in plain text")
	}
}

func TestLogServe_APIKeyAuth(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := &Settings{
		Serve: ServeSettings{
			Transport: "stdio",
			Auth:      AuthSettings{Type: AuthTypeAPIKey, APIKeys: []string{"key1", "key2", "key3"}},
		},
	}

	LogServe(s, logger)

	if !strings.Contains(buf.String(), "count=3") {
		t.Errorf("Expected 'count=3' in log output, got: %s", buf.String())
	}
}

func TestAuthSettingsLogValue(t *testing.T) {
	s := AuthSettings{
		Type:    AuthTypeAPIKey,
		Basic:   BasicAuthSettings{Username: "admin", Password: "secret"},
		APIKeys: []string{"key1", "key2"},
	}

	val := AuthSettingsLogValue(s)
	str := val.String()
	if strings.Contains(str, "secret") {
		t.Error("Password should be masked in log value")
	}
	if strings.Contains(str, "key1") {
		t.Error("API keys should be masked in log value")
	}
	if !strings.Contains(str, "admin") {
		t.Error("Username should be visible in log value")
	}
}
