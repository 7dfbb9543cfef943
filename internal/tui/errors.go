package tui

import "strings"

// unreachableHints are fragments of dial and timeout errors as they appear in
// sync failure messages.
var unreachableHints = []string{
	"connection refused",
	"dial tcp",
	"no such host",
	"i/o timeout",
	"context deadline exceeded",
}

func humanizeBackendUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	for _, hint := range unreachableHints {
		if strings.Contains(lower, hint) {
			return "backend is not reachable"
		}
	}
	return msg
}
