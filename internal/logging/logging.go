package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-board/internal/config"
)

// Setup configures logger for the mode in cfg. When cfg.LogFile is set,
// entries are also written as JSON to a size-rotated file.
func Setup(logger *logrus.Logger, cfg *config.Config) error {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	logger.SetLevel(logLevel)

	if cfg.Production() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if cfg.LogFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
	}
	logger.AddHook(hook)
	return nil
}
