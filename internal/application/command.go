package application

import (
	"context"

	"github.com/bnema/chatgate/internal/domain"
)

// CLISurface is the local console. Senders on it are always authorized.
const CLISurface = "cli"

type Reply struct {
	Text         string `json:"text"`
	MediaURL     string `json:"media_url,omitempty"`
	AudioAsVoice bool   `json:"audio_as_voice,omitempty"`
}

// CommandResult is what a handler returns once it claims a message.
// ShouldContinue=false with a nil Reply means the message was absorbed
// without an answer.
type CommandResult struct {
	ShouldContinue bool
	Reply          *Reply
}

// CommandContext is an inbound chat message normalized for command handling.
type CommandContext struct {
	Surface   string
	AccountID string
	SenderID  string
	IsGroup   bool
	// Body is the trimmed command text, RawBody the message as received.
	Body    string
	RawBody string
	// TargetSessionKey addresses a session other than the one the message
	// arrived in. Empty means "this session".
	TargetSessionKey string
	AbortKey         string
	Authorized       bool
}

// Authorize returns domain.ErrUnauthorized for senders outside allowFrom.
func (c CommandContext) Authorize() error {
	if !c.Authorized {
		return domain.ErrUnauthorized
	}
	return nil
}

type CommandRequest struct {
	Command           CommandContext
	Config            domain.Document
	SessionKey        string
	SessionEntry      *domain.SessionEntry
	AllowTextCommands bool
}

// CommandHandler returns nil when the message is not its command.
type CommandHandler interface {
	Handle(ctx context.Context, req CommandRequest) *CommandResult
}

type CommandHandlerFunc func(ctx context.Context, req CommandRequest) *CommandResult

func (f CommandHandlerFunc) Handle(ctx context.Context, req CommandRequest) *CommandResult {
	return f(ctx, req)
}

func replyText(text string) *CommandResult {
	return &CommandResult{Reply: &Reply{Text: text}}
}

func replyError(err error) *CommandResult {
	return replyText("⚠️ " + err.Error())
}

func absorbed() *CommandResult {
	return &CommandResult{}
}

func senderLabel(senderID string) string {
	if senderID == "" {
		return "<unknown>"
	}
	return senderID
}
