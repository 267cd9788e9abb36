package domain

import "fmt"

const RestartMethodSignal = "sigusr1"

type RestartMethod struct {
	OK     bool
	Method string
	Detail string
}

// Err is nil for a successful restart and wraps ErrRestartFailed otherwise.
func (m RestartMethod) Err() error {
	if m.OK {
		return nil
	}
	if m.Detail == "" {
		return fmt.Errorf("%w via %s", ErrRestartFailed, m.Method)
	}
	return fmt.Errorf("%w via %s: %s", ErrRestartFailed, m.Method, m.Detail)
}
