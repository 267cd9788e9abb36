package domain

import (
	"strings"
	"time"
)

type GroupActivation string
type SendPolicy string
type UsageDisplay string

const (
	GroupActivationMention GroupActivation = "mention"
	GroupActivationAlways  GroupActivation = "always"

	SendPolicyAllow SendPolicy = "allow"
	SendPolicyDeny  SendPolicy = "deny"

	UsageDisplayOff    UsageDisplay = "off"
	UsageDisplayTokens UsageDisplay = "tokens"
	UsageDisplayFull   UsageDisplay = "full"
)

// SessionEntry holds the per-conversation state that control commands touch.
// Zero values mean "inherit" for SendPolicy and "off" for ResponseUsage.
type SessionEntry struct {
	SessionID                 string
	GroupActivation           GroupActivation
	GroupActivationNeedsIntro bool
	SendPolicy                SendPolicy
	ResponseUsage             UsageDisplay
	AbortedLastRun            bool
	UpdatedAt                 time.Time
}

func ParseGroupActivation(raw string) (GroupActivation, bool) {
	switch GroupActivation(strings.ToLower(strings.TrimSpace(raw))) {
	case GroupActivationMention:
		return GroupActivationMention, true
	case GroupActivationAlways:
		return GroupActivationAlways, true
	default:
		return "", false
	}
}

// ParseSendPolicy maps on/off/allow/deny to a policy. "inherit" returns the
// empty policy with ok set, meaning the field is cleared.
func ParseSendPolicy(raw string) (SendPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "allow":
		return SendPolicyAllow, true
	case "off", "deny":
		return SendPolicyDeny, true
	case "inherit", "default", "reset":
		return "", true
	default:
		return "", false
	}
}

func (p SendPolicy) Label() string {
	switch p {
	case SendPolicyAllow:
		return "on"
	case SendPolicyDeny:
		return "off"
	default:
		return "inherit"
	}
}

func NormalizeUsageDisplay(raw string) (UsageDisplay, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "off", "none", "false", "0":
		return UsageDisplayOff, true
	case "tokens", "token", "tok", "on", "minimal":
		return UsageDisplayTokens, true
	case "full", "all", "session":
		return UsageDisplayFull, true
	default:
		return "", false
	}
}

// ResolveUsageDisplay treats anything unrecognised as off.
func ResolveUsageDisplay(raw UsageDisplay) UsageDisplay {
	if mode, ok := NormalizeUsageDisplay(string(raw)); ok {
		return mode
	}
	return UsageDisplayOff
}

// Next cycles off -> tokens -> full -> off.
func (u UsageDisplay) Next() UsageDisplay {
	switch ResolveUsageDisplay(u) {
	case UsageDisplayOff:
		return UsageDisplayTokens
	case UsageDisplayTokens:
		return UsageDisplayFull
	default:
		return UsageDisplayOff
	}
}
