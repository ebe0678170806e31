package logging

import (
	"log/slog"
	"os"
)

const (
	// KeyError is the key for an error attribute.
	KeyError = `err`

	// KeyAppName is the key for the application name attribute.
	KeyAppName = `app`

	// KeyComponent is the key for the component name attribute.
	KeyComponent = `component`

	// KeyGuild is the key for the guild ID attribute.
	KeyGuild = `guild`

	// KeyCommand is the key for the command name attribute.
	KeyCommand = `command`

	// KeyUser is the key for the user ID attribute.
	KeyUser = `user`
)

// Name is the name of the application that the logger is for.
type Name string

// Config is the configuration for a logger.
type Config struct {
	// name is the name of the application.
	name Name

	// handlerOptions are the options for the slog handler.
	handlerOptions *slog.HandlerOptions
}

// NewConfig creates a new logging configuration.
func NewConfig(name Name) *Config {
	return &Config{
		name: name,
		handlerOptions: &slog.HandlerOptions{
			AddSource: true,
		},
	}
}

// CommonLogger creates the common logger for the application.
func CommonLogger(c *Config) (*slog.Logger, error) {
	l := slog.New(slog.NewJSONHandler(os.Stdout, c.handlerOptions)).With(
		slog.String(KeyAppName, string(c.name)),
	)

	// Set the default logger so that any library logging is also structured.
	slog.SetDefault(l)

	return l, nil
}
