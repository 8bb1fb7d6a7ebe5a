// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the logrus logger shared by the CLI and the web server.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to w at level ("debug", "info", "warn",
// "error"). format "json" selects the JSON formatter; anything else is text.
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return logger, nil
}

// WithService returns an entry tagged with the service name.
func WithService(logger *logrus.Logger, service string) *logrus.Entry {
	return logger.WithField("service", service)
}
