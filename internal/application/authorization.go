package application

import (
	"strings"

	"github.com/bnema/chatgate/internal/domain"
)

var (
	pathCommandsAllowFrom = mustConfigPath("commands.allowFrom")
	pathCommandsText      = mustConfigPath("commands.text")
)

// IsAuthorizedSender checks commands.allowFrom. Entries match a bare sender
// id, "<surface>:<sender>", or "*". Without an allowFrom list every sender is
// authorized; the cli surface always is.
func IsAuthorizedSender(cfg domain.Document, surface, senderID string) bool {
	if surface == CLISurface {
		return true
	}

	raw, ok := domain.GetAtPath(cfg, pathCommandsAllowFrom)
	if !ok || raw == nil {
		return true
	}
	entries, ok := raw.([]any)
	if !ok {
		return false
	}

	senderID = strings.TrimSpace(senderID)
	for _, entry := range entries {
		value, ok := entry.(string)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch {
		case value == "*":
			return true
		case senderID == "":
			continue
		case strings.EqualFold(value, senderID):
			return true
		case strings.EqualFold(value, surface+":"+senderID):
			return true
		}
	}
	return false
}

// TextCommandsAllowed is false only when commands.text is explicitly false.
func TextCommandsAllowed(cfg domain.Document) bool {
	value, ok := domain.GetAtPath(cfg, pathCommandsText)
	if !ok {
		return true
	}
	allowed, isBool := value.(bool)
	return !isBool || allowed
}

// requireFeature returns a *domain.FeatureDisabledError unless
// commands.<name> is exactly true.
func requireFeature(cfg domain.Document, name string) error {
	value, _ := domain.GetAtPath(cfg, domain.ConfigPath{domain.KeySegment("commands"), domain.KeySegment(name)})
	if enabled, isBool := value.(bool); isBool && enabled {
		return nil
	}
	return &domain.FeatureDisabledError{Command: name}
}

// ConfigWritesAllowed resolves channels.<channel>.accounts.<account>.configWrites,
// then channels.<channel>.configWrites. Writes are allowed unless one of them
// is false.
func ConfigWritesAllowed(cfg domain.Document, channelID, accountID string) bool {
	if channelID == "" {
		return true
	}

	channel := domain.ConfigPath{domain.KeySegment("channels"), domain.KeySegment(channelID)}
	if accountID != "" {
		accountFlag := append(append(domain.ConfigPath{}, channel...),
			domain.KeySegment("accounts"), domain.KeySegment(accountID), domain.KeySegment("configWrites"))
		if value, ok := domain.GetAtPath(cfg, accountFlag); ok {
			if allowed, isBool := value.(bool); isBool {
				return allowed
			}
		}
	}

	channelFlag := append(append(domain.ConfigPath{}, channel...), domain.KeySegment("configWrites"))
	if value, ok := domain.GetAtPath(cfg, channelFlag); ok {
		if allowed, isBool := value.(bool); isBool {
			return allowed
		}
	}
	return true
}

func mustConfigPath(raw string) domain.ConfigPath {
	path, err := domain.ParseConfigPath(raw)
	if err != nil {
		panic(err)
	}
	return path
}
