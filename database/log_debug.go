//go:build debug

package database

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[geomdb DEBUG] ", log.LstdFlags)

// logDebugf writes a debug message to standard error.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
