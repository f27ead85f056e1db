package taglist

import (
	"os"

	"go.uber.org/zap"
)

// Log is the package logger. Containers log under Log.Named("taglist")
// unless given their own logger.
var Log *zap.SugaredLogger
var globalLevel zap.AtomicLevel

func init() {
	globalLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	Log = buildLogger()
}

// SetLogLevel changes the level of Log, e.g. "debug" or "error".
func SetLogLevel(level string) error {
	return globalLevel.UnmarshalText([]byte(level))
}

func buildLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = globalLevel
	if os.Getenv("TAGLIST_LOG_JSON") != "" {
		cfg.Encoding = "json"
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}
