package fiberlog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Config selects what the request logger writes and at which level.
type Config struct {
	// Logger receives the entries, nil means the logrus standard logger.
	Logger *logrus.Logger
	// Tags name the fields of every entry, see tags.go.
	Tags []string
	// SkipPaths are exact paths that are never logged.
	SkipPaths []string
	// WarnStatus is the lowest response status logged as a warning.
	// 5xx responses are always logged as errors.
	WarnStatus int
}

// ConfigDefault logs who called what and how it ended, without bodies.
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagUserID,
	},
	SkipPaths:  []string{"/metrics"},
	WarnStatus: fiber.StatusBadRequest,
}

func configDefault(config ...Config) Config {
	if len(config) == 0 {
		return ConfigDefault
	}
	cfg := config[0]
	if cfg.Tags == nil {
		cfg.Tags = ConfigDefault.Tags
	}
	if cfg.WarnStatus <= 0 {
		cfg.WarnStatus = ConfigDefault.WarnStatus
	}
	return cfg
}

func (c Config) logger() *logrus.Logger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

func (c Config) levelOf(status int) logrus.Level {
	switch {
	case status >= fiber.StatusInternalServerError:
		return logrus.ErrorLevel
	case status >= c.WarnStatus:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
