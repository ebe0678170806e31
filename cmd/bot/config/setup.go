package config

import (
	"log/slog"
	"os"

	"github.com/NefyAD/madoguchi/pkg/logging"
	"github.com/joho/godotenv"
)

// Parse loads the application configuration from the environment. A .env
// file in the working directory is loaded first if present, so local runs
// do not need the variables exported.
func Parse(l *slog.Logger) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		l.Warn("Error loading .env file", slog.String(logging.KeyError, err.Error()))
	}

	if envBT := os.Getenv(EnvBotToken); envBT != "" {
		l.Debug("Found bot token in environment", slog.String("key", EnvBotToken))
		BotToken = envBT
	}

	if envAppId := os.Getenv(EnvApplicationId); envAppId != "" {
		l.Debug("Found application ID in environment", slog.String("key", EnvApplicationId))
		ApplicationId = envAppId
	}

	if envDir := os.Getenv(EnvSnapshotDir); envDir != "" {
		l.Debug("Found snapshot directory in environment", slog.String("key", EnvSnapshotDir))
		SnapshotDir = envDir
	} else {
		// Default to the directory the original deployment used.
		SnapshotDir = "ticket_saves"

		l.Info("No snapshot directory provided in environment, defaulting to ticket_saves", slog.String("key", EnvSnapshotDir))
	}

	if envMonitoringPort := os.Getenv(EnvMonitoringPort); envMonitoringPort != "" {
		l.Debug("Found monitoring port in environment", slog.String("key", EnvMonitoringPort))
		MonitoringPort = envMonitoringPort
	} else {
		// Default to 8080 if not provided.
		MonitoringPort = "8080"

		l.Info("No monitoring port provided in environment, defaulting to 8080", slog.String("key", EnvMonitoringPort))
	}

	if BotToken == "" || ApplicationId == "" {
		l.Error("Not all required environment variables have been provided", slog.String(logging.KeyError, "Incomplete configuration"))
		os.Exit(1)
	}

	l.Debug("All required environment variables have been provided")
}
