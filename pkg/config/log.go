package config

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
)

// InitLog sends the standard logger to dest, which is opened for appending.
// The terminal belongs to the UI, so nothing may be logged to it.
func InitLog(dest, prefix string) (io.Closer, error) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	return f, nil
}

// SessionPrefix tags the log lines of one run.
func SessionPrefix() string {
	return fmt.Sprintf("[%s] ", uuid.NewString()[:8])
}
