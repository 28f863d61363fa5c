package utils

import (
	"log"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger     *log.Logger
	loggerOnce sync.Once
	rotator    *lumberjack.Logger
)

// GetLogger returns the process-wide file logger, writing to
// .scribe/scribe.log in the working directory with rotation.
func GetLogger() *log.Logger {
	loggerOnce.Do(func() {
		rotator = &lumberjack.Logger{
			Filename:   ".scribe/scribe.log",
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		logger = log.New(rotator, "", log.LstdFlags)
	})
	return logger
}

// CloseLogger flushes and closes the underlying log file. Call it once
// on process exit.
func CloseLogger() {
	if rotator != nil {
		_ = rotator.Close()
	}
}

func Log(message string) {
	GetLogger().Println(message)
}

func Logf(format string, args ...any) {
	GetLogger().Printf(format, args...)
}

func LogError(err error) {
	if err != nil {
		GetLogger().Printf("ERROR: %v", err)
	}
}

// LogUserInteraction records a prompt shown to the user and their
// answer, so a session can be reconstructed from the log.
func LogUserInteraction(prompt, response string) {
	GetLogger().Printf("PROMPT: %s RESPONSE: %s", prompt, response)
}
