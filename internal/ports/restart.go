package ports

import (
	"context"

	"github.com/bnema/chatgate/internal/domain"
)

type SignalRestarter interface {
	HasListener() bool
	Schedule(reason string) error
}

type SupervisorRestarter interface {
	Restart(ctx context.Context) domain.RestartMethod
}
