package logging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

// Logger returns the process-wide logger, writing to STDOUT by default or
// appending to a date-suffixed file when a log file path is configured.
func Logger(logFilePath string) *lecho.Logger {
	logger := lecho.New(
		os.Stdout,
		lecho.WithLevel(log.INFO),
		lecho.WithTimestamp(),
	)
	if logFilePath != "" {
		file, err := openLogFile(logFilePath)
		if err != nil {
			logger.Errorf("failed to open logging file: %v", err)
			return logger
		}
		logger.SetOutput(file)
	}

	return logger
}

func openLogFile(path string) (*os.File, error) {
	if filepath.Ext(path) == "" {
		path = path + time.Now().Format("-2006-01-02") + ".log"
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
}
