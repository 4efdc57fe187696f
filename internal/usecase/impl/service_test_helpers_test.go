package impl

import (
	"io"
	"log/slog"

	"pickup/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(activeFilterEnabled bool) *config.Config {
	return &config.Config{
		Matching: &config.MatchingConfig{
			ActiveFilterEnabled: activeFilterEnabled,
		},
	}
}
