package server

import (
	"fmt"
	"time"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by mirroring render progress to stdout
// and optionally to a console channel for the browser
type WebLogger struct {
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a web logger that forwards messages to the given
// console channel
func NewWebLogger(consoleChan chan<- ConsoleMessage) *WebLogger {
	return &WebLogger{consoleChan: consoleChan}
}

// Printf implements the core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}
