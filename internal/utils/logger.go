package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized log line with module/action/request_id.
// Messages should be short summaries, never raw payloads.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), message)
}
