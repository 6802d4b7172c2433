package internal

import "strings"

// MaxHistory is the number of recent topics retained.
const MaxHistory = 5

// History is a bounded, deduplicating, most-recently-used list of topics.
// Storage order is oldest first; the last element is the most recent.
type History struct {
	entries []string
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Record inserts a topic at the most-recent end, removing any existing
// occurrence first and dropping the oldest entries beyond MaxHistory.
// Empty and whitespace-only topics are ignored. Returns true if the stored
// sequence changed.
func (h *History) Record(topic string) bool {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return false
	}
	n := len(h.entries)
	if n > 0 && h.entries[n-1] == topic {
		// Already the most recent entry.
		return false
	}
	for i, e := range h.entries {
		if e == topic {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, topic)
	if len(h.entries) > MaxHistory {
		h.entries = h.entries[len(h.entries)-MaxHistory:]
	}
	return true
}

// Recent returns up to n entries, most recent first.
func (h *History) Recent(n int) []string {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]string, 0, n)
	for i := len(h.entries) - 1; i >= len(h.entries)-n; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

// Entries returns a copy of the stored sequence, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Replace overwrites the stored sequence, keeping only the MaxHistory most
// recent entries. Used when loading a persisted document.
func (h *History) Replace(entries []string) {
	if len(entries) > MaxHistory {
		entries = entries[len(entries)-MaxHistory:]
	}
	h.entries = make([]string, len(entries))
	copy(h.entries, entries)
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}
