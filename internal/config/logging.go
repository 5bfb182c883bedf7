package config

import (
	"context"
	"log/slog"
)

// Log logs the resolved settings in a granular way, skipping irrelevant ones
func Log(s *Settings) {
	LogWithLogger(s, slog.Default())
}

// LogWithLogger logs the resolved settings using the provided logger
func LogWithLogger(s *Settings, logger *slog.Logger) {
	ctx := context.Background()
	if s.Search.DataDir != "" {
		logger.InfoContext(ctx, "Config: search.data_dir", "value", s.Search.DataDir)
	} else {
		logger.InfoContext(ctx, "Config: search.data_dir", "value", "(embedded)")
	}
	logger.InfoContext(ctx, "Config: search.max_results", "value", s.Search.MaxResults)
	logger.InfoContext(ctx, "Config: design_system.results_per_category", "value", s.DesignSystem.ResultsPerCategory)
	if s.DesignSystem.OutputDir != "" {
		logger.InfoContext(ctx, "Config: design_system.output_dir", "value", s.DesignSystem.OutputDir)
	}
}

// LogServe logs the serve-mode settings, masking credentials
func LogServe(s *Settings, logger *slog.Logger) {
	ctx := context.Background()
	logger.InfoContext(ctx, "Config: serve.transport", "value", s.Serve.Transport)
	if s.Serve.Transport == "sse" {
		logger.InfoContext(ctx, "Config: serve.host", "value", s.Serve.Host)
		logger.InfoContext(ctx, "Config: serve.port", "value", s.Serve.Port)
	}

	logger.InfoContext(ctx, "Config: serve.auth.type", "value", s.Serve.Auth.Type)
	switch s.Serve.Auth.Type {
	case AuthTypeBasic:
		logger.InfoContext(ctx, "Config: serve.auth.basic.username", "value", s.Serve.Auth.Basic.Username)
		logger.InfoContext(ctx, "Config: serve.auth.basic.password", "value", "****")
	case AuthTypeAPIKey:
		logger.InfoContext(ctx, "Config: serve.auth.api_keys", "count", len(s.Serve.Auth.APIKeys))
	}
}

// AuthSettingsLogValue returns a slog.Value for AuthSettings with masked data
func AuthSettingsLogValue(s AuthSettings) slog.Value {
	keys := make([]string, len(s.APIKeys))
	for i := range s.APIKeys {
		keys[i] = "****"
	}
	return slog.GroupValue(
		slog.String("type", s.Type),
		slog.Any("basic", slog.GroupValue(
			slog.String("username", s.Basic.Username),
			slog.String("password", "****"),
		)),
		slog.Any("api_keys", keys),
	)
}
