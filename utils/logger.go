package utils

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogRotationOptions mirrors the logging section of the production config.
type LogRotationOptions struct {
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// SetupLogging routes the standard logger to stdout and, when a file path is
// configured, to a size-rotated log file as well.
func SetupLogging(opts LogRotationOptions) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if opts.FilePath == "" {
		log.SetOutput(os.Stdout)
		return
	}

	rotated := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotated))
}
