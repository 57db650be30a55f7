package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/IcedLeon/Raytracing/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Console keeps a bounded history of log messages for the web UI
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
}

// NewConsole creates a console holding at most limit messages
func NewConsole(limit int) *Console {
	return &Console{limit: limit}
}

// Append records a message, dropping the oldest past the limit
func (c *Console) Append(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
	})
	if len(c.messages) > c.limit {
		c.messages = c.messages[len(c.messages)-c.limit:]
	}
}

// Messages returns a copy of the current history
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

func (c *Console) handleMessages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.Messages())
}

// consoleLogger implements core.Logger by mirroring messages to stdout
// and the web console
type consoleLogger struct {
	console *Console
}

// Logger returns a core.Logger backed by this console
func (c *Console) Logger() core.Logger {
	return &consoleLogger{console: c}
}

// Printf implements core.Logger
func (cl *consoleLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Print(message)
	cl.console.Append(message)
}
