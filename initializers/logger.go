package initializers

import (
	"github.com/Aaron071982/riseandshineHRM-final-sub000/config"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/fiberlog"
	log "github.com/sirupsen/logrus"
)

func InitLogger() *fiberlog.Config {
	conf := config.Conf.Log
	logBodies := conf.RequestBodies != nil && *conf.RequestBodies
	return setupLogging(log.StandardLogger(), log.New(), conf.Level, conf.RequestLevel, logBodies)
}

// setupLogging formats both loggers as JSON and builds the request logger config.
// An unknown level is reported and replaced with info.
func setupLogging(appLogger, requestLogger *log.Logger, level, requestLevel string, logBodies bool) *fiberlog.Config {
	appLogger.SetFormatter(jsonFormatter())
	appLogger.SetLevel(parseLevel(level))
	requestLogger.SetFormatter(jsonFormatter())
	requestLogger.SetLevel(parseLevel(requestLevel))

	tags := []string{
		fiberlog.TagMethod,
		fiberlog.TagPath,
		fiberlog.TagStatus,
		fiberlog.TagLatency,
		fiberlog.TagUserID,
		fiberlog.RequestID,
	}
	if logBodies {
		tags = append(tags, fiberlog.TagBody, fiberlog.TagResBody)
	}
	return &fiberlog.Config{
		Logger:    requestLogger,
		Tags:      tags,
		SkipPaths: []string{"/metrics"},
	}
}

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

func parseLevel(value string) log.Level {
	level, err := log.ParseLevel(value)
	if err != nil {
		log.WithField("level", value).Warn("unknown log level, using info")
		return log.InfoLevel
	}
	return level
}
