package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/zrygan/go-raycaster/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// maxConsoleMessages bounds the retained console history
const maxConsoleMessages = 100

// ConsoleLogger implements core.Logger by retaining recent messages for
// the console endpoint, echoing each line to stdout
type ConsoleLogger struct {
	mu       sync.Mutex
	messages []ConsoleMessage
}

// NewConsoleLogger creates a new console logger
func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{}
}

// Printf implements core.Logger
func (cl *ConsoleLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.messages = append(cl.messages, ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
	})
	if len(cl.messages) > maxConsoleMessages {
		cl.messages = cl.messages[len(cl.messages)-maxConsoleMessages:]
	}
}

// Messages returns a snapshot of the retained console history
func (cl *ConsoleLogger) Messages() []ConsoleMessage {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	snapshot := make([]ConsoleMessage, len(cl.messages))
	copy(snapshot, cl.messages)
	return snapshot
}

var _ core.Logger = (*ConsoleLogger)(nil)

// handleConsole returns the recent server log lines
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	console, ok := s.logger.(*ConsoleLogger)
	if !ok {
		http.Error(w, "console logging not enabled", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"messages": console.Messages(),
	})
}
