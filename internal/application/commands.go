package application

import (
	"log/slog"

	"github.com/bnema/chatgate/internal/logging"
	"github.com/bnema/chatgate/internal/ports"
)

type CommandsDeps struct {
	Config    *ConfigService
	Overrides *Overrides
	Sessions  *SessionService
	Aborts    *AbortService
	Restarts  *RestartService
	Usage     ports.UsageCostSource
	Clock     ports.Clock
	Logger    *slog.Logger
}

// Commands implements the chat control commands on top of the services.
type Commands struct {
	config    *ConfigService
	overrides *Overrides
	sessions  *SessionService
	aborts    *AbortService
	restarts  *RestartService
	usage     ports.UsageCostSource
	clock     ports.Clock
	logger    *slog.Logger
}

func NewCommands(deps CommandsDeps) *Commands {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	overrides := deps.Overrides
	if overrides == nil {
		overrides = NewOverrides()
	}

	return &Commands{
		config:    deps.Config,
		overrides: overrides,
		sessions:  deps.Sessions,
		aborts:    deps.Aborts,
		restarts:  deps.Restarts,
		usage:     deps.Usage,
		clock:     clock,
		logger:    logging.OrDefault(deps.Logger),
	}
}

// Handlers lists the handlers in dispatch order.
func (c *Commands) Handlers() []CommandHandler {
	return []CommandHandler{
		CommandHandlerFunc(c.HandleConfig),
		CommandHandlerFunc(c.HandleDebug),
		CommandHandlerFunc(c.HandleActivation),
		CommandHandlerFunc(c.HandleSendPolicy),
		CommandHandlerFunc(c.HandleUsage),
		CommandHandlerFunc(c.HandleRestart),
		CommandHandlerFunc(c.HandleStop),
		CommandHandlerFunc(c.HandleAbortTrigger),
	}
}

func (c *Commands) ignoreUnauthorized(command string, req CommandRequest, err error) *CommandResult {
	c.logger.Debug("ignoring command from unauthorized sender",
		"command", command,
		"error", err,
		"sender", senderLabel(req.Command.SenderID),
		"surface", req.Command.Surface)
	return absorbed()
}
