package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/logging"
)

// Message is one inbound chat message before command normalization.
type Message struct {
	Surface          string
	AccountID        string
	SenderID         string
	IsGroup          bool
	Body             string
	SessionKey       string
	TargetSessionKey string
}

// Dispatcher hands a message to each handler in order until one claims it.
type Dispatcher struct {
	handlers []CommandHandler
	config   ConfigSource
	sessions SessionLookup
	logger   *slog.Logger
}

func NewDispatcher(config ConfigSource, sessions SessionLookup, logger *slog.Logger, handlers ...CommandHandler) *Dispatcher {
	return &Dispatcher{
		handlers: handlers,
		config:   config,
		sessions: sessions,
		logger:   logging.OrDefault(logger),
	}
}

// Dispatch returns nil when no handler claims the message; the caller treats
// it as ordinary input for the agent.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) (result *CommandResult) {
	req := d.request(msg)

	defer func() {
		if recovered := recover(); recovered != nil {
			d.logger.Error("command handler panicked", "body", req.Command.Body, "panic", recovered)
			result = replyText(fmt.Sprintf("⚠️ Command failed: %v", recovered))
		}
	}()

	for _, handler := range d.handlers {
		if claimed := handler.Handle(ctx, req); claimed != nil {
			return claimed
		}
	}
	return nil
}

func (d *Dispatcher) request(msg Message) CommandRequest {
	cfg := domain.Document{}
	if d.config != nil {
		cfg = d.config.Effective()
	}

	var entry *domain.SessionEntry
	if d.sessions != nil && msg.SessionKey != "" {
		if found, ok := d.sessions.Get(msg.SessionKey); ok {
			entry = &found
		}
	}

	return CommandRequest{
		Command: CommandContext{
			Surface:          msg.Surface,
			AccountID:        msg.AccountID,
			SenderID:         msg.SenderID,
			IsGroup:          msg.IsGroup,
			Body:             strings.TrimSpace(msg.Body),
			RawBody:          msg.Body,
			TargetSessionKey: msg.TargetSessionKey,
			AbortKey:         abortKey(msg),
			Authorized:       IsAuthorizedSender(cfg, msg.Surface, msg.SenderID),
		},
		Config:            cfg,
		SessionKey:        msg.SessionKey,
		SessionEntry:      entry,
		AllowTextCommands: TextCommandsAllowed(cfg),
	}
}

func abortKey(msg Message) string {
	if msg.SessionKey != "" {
		return msg.SessionKey
	}
	if msg.SenderID != "" {
		return msg.Surface + ":" + msg.SenderID
	}
	return ""
}
