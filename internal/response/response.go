// Package response writes the same success/message/data/timestamp
// envelope the upstream backend uses, so the browser sees one shape
// end to end.
package response

import (
	"encoding/json"
	"net/http"
	"time"
)

type envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

func write(w http.ResponseWriter, status int, env envelope) {
	env.Timestamp = time.Now().Format(time.RFC3339)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// JSON writes a successful envelope.
func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, envelope{Success: true, Data: data})
}

// Error writes a failed envelope with a message only.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: false, Message: message})
}

// Outcome writes a failed envelope carrying a machine-readable reason
// code alongside the localized message. The client picks severity from
// the reason, not the text.
func Outcome(w http.ResponseWriter, status int, message, reason string) {
	write(w, status, envelope{
		Success: false,
		Message: message,
		Data:    map[string]string{"reason": reason},
	})
}
