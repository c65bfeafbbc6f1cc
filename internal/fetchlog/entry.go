package fetchlog

import (
	"time"
	"unicode/utf8"
)

const (
	// maxBodyLen bounds the request/response text kept per entry.
	maxBodyLen = 2000
	// maxColumnLen keeps url and error inside their VARCHAR(512) columns,
	// ellipsis included.
	maxColumnLen = 500
)

// Entry is one exchange with a backend API.
type Entry struct {
	ID           uint
	TraceID      string
	Method       string
	URL          string
	Status       int
	DurationMs   int64
	RequestBody  string
	ResponseBody string
	Error        string
	CreatedAt    time.Time
}

// Truncate cuts s to the stored body length.
func Truncate(s string) string {
	return truncate(s, maxBodyLen)
}

// truncate cuts s to at most n bytes on a rune boundary and marks the cut.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := n
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return s[:i] + "…"
}
