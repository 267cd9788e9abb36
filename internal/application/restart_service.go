package application

import (
	"context"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports"
)

// RestartService prefers an in-process SIGUSR1 restart when a listener is
// registered and falls back to the service supervisor otherwise.
type RestartService struct {
	signal     ports.SignalRestarter
	supervisor ports.SupervisorRestarter
}

func NewRestartService(signal ports.SignalRestarter, supervisor ports.SupervisorRestarter) *RestartService {
	return &RestartService{signal: signal, supervisor: supervisor}
}

func (s *RestartService) Restart(ctx context.Context, reason string) domain.RestartMethod {
	if s.signal != nil && s.signal.HasListener() {
		if err := s.signal.Schedule(reason); err != nil {
			return domain.RestartMethod{Method: domain.RestartMethodSignal, Detail: err.Error()}
		}
		return domain.RestartMethod{OK: true, Method: domain.RestartMethodSignal}
	}

	if s.supervisor == nil {
		return domain.RestartMethod{Method: "unsupported", Detail: "no supervisor configured"}
	}
	return s.supervisor.Restart(ctx)
}
