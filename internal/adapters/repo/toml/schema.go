package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int                      `toml:"version"`
	Sessions map[string]sessionSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Sessions == nil {
		s.Sessions = map[string]sessionSchema{}
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported sessions schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	SessionID                 string `toml:"session_id"`
	GroupActivation           string `toml:"group_activation,omitempty"`
	GroupActivationNeedsIntro bool   `toml:"group_activation_needs_intro,omitempty"`
	SendPolicy                string `toml:"send_policy,omitempty"`
	ResponseUsage             string `toml:"response_usage,omitempty"`
	AbortedLastRun            bool   `toml:"aborted_last_run,omitempty"`
	UpdatedAt                 string `toml:"updated_at,omitempty"`
}
