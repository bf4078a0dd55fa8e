package domain

import "encoding/json"

const LogKindError = "error"

// LogEntry is one log line reported by a bot. Entries are never modified after they are stored,
// so copies may share Meta.
type LogEntry struct {
	Kind      string          `json:"type"`
	Timestamp string          `json:"time"`
	Message   string          `json:"message"`
	Meta      json.RawMessage `json:"meta,omitempty"`
}

func (l LogEntry) IsError() bool {
	return l.Kind == LogKindError
}

func countErrors(logs []LogEntry) uint64 {
	var n uint64
	for _, l := range logs {
		if l.IsError() {
			n++
		}
	}
	return n
}

func cloneLogs(logs []LogEntry) []LogEntry {
	out := make([]LogEntry, len(logs))
	copy(out, logs)
	return out
}

// trimLogs keeps the newest keep entries. The kept entries are copied so the dropped
// prefix can be collected.
func trimLogs(logs []LogEntry, keep int) ([]LogEntry, int) {
	if keep < 0 {
		keep = 0
	}
	if len(logs) <= keep {
		return logs, 0
	}
	dropped := len(logs) - keep
	return cloneLogs(logs[dropped:]), dropped
}
