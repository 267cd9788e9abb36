package application

import (
	"strings"

	"github.com/bnema/chatgate/internal/domain"
)

type SessionLookup interface {
	Get(key string) (domain.SessionEntry, bool)
}

// ResolveAbortTarget picks the session a stop applies to. An explicit target
// found in the table wins, then the ambient session, then a bare key.
func ResolveAbortTarget(targetKey, ambientKey string, ambient *domain.SessionEntry, table SessionLookup) domain.AbortTarget {
	key := strings.TrimSpace(targetKey)
	if key == "" {
		key = ambientKey
	}

	if key != "" && table != nil {
		if entry, ok := table.Get(key); ok {
			return domain.AbortTarget{Entry: &entry, Key: key, SessionID: entry.SessionID}
		}
	}

	if ambient != nil && ambientKey != "" {
		entry := *ambient
		return domain.AbortTarget{Entry: &entry, Key: ambientKey, SessionID: entry.SessionID}
	}

	return domain.AbortTarget{Key: key}
}
