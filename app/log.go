package app

import (
	"fmt"
	"log/slog"
	"strings"
)

var (
	logLevelMap = map[string]slog.Level{
		"info":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
	}
	logLevelFlag string
)

func setLogLevel() error {
	level, ok := logLevelMap[strings.ToLower(logLevelFlag)]
	if !ok {
		return fmt.Errorf("unknown log level: %v", logLevelFlag)
	}
	slog.SetLogLoggerLevel(level)
	return nil
}
