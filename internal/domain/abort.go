package domain

import "strings"

// AbortTarget is the session a stop or abort acts on. Any field may be empty
// when the target is only partially known.
type AbortTarget struct {
	Entry     *SessionEntry
	Key       string
	SessionID string
}

type QueueClearResult struct {
	FollowupCleared int
	LaneCleared     int
	Keys            []string
}

func (r QueueClearResult) Total() int {
	return r.FollowupCleared + r.LaneCleared
}

var abortTriggers = map[string]struct{}{
	"stop":      {},
	"esc":       {},
	"abort":     {},
	"wait":      {},
	"exit":      {},
	"interrupt": {},
}

// IsAbortTrigger reports whether a whole message is one of the plain-text
// abort phrases.
func IsAbortTrigger(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return false
	}
	_, ok := abortTriggers[normalized]
	return ok
}
