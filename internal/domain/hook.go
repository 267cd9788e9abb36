package domain

import "time"

type HookEvent struct {
	Type       string
	Action     string
	SessionKey string
	Context    HookContext
	Timestamp  time.Time
}

type HookContext struct {
	SessionEntry  *SessionEntry
	SessionID     string
	CommandSource string
	SenderID      string
}

// Name is the "type:action" form hook handlers register against.
func (e HookEvent) Name() string {
	if e.Action == "" {
		return e.Type
	}
	return e.Type + ":" + e.Action
}
