package cmd

import (
	"strings"

	"github.com/bnema/chatgate/internal/application"
	"github.com/spf13/cobra"
)

// messageFlags describe where a message typed at the CLI claims to come from.
type messageFlags struct {
	surface    string
	sender     string
	account    string
	sessionKey string
	target     string
	group      bool
}

func (f *messageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.surface, "surface", application.CLISurface, "Channel the message arrives on")
	cmd.Flags().StringVar(&f.sender, "sender", "local", "Sender id")
	cmd.Flags().StringVar(&f.account, "account", "", "Channel account id")
	cmd.Flags().StringVar(&f.sessionKey, "session", "", "Session key (default <surface>:<sender>)")
	cmd.Flags().StringVar(&f.target, "target", "", "Session key to act on instead of the current one")
	cmd.Flags().BoolVar(&f.group, "group", false, "Treat the message as sent in a group chat")
}

func (f *messageFlags) key() string {
	if key := strings.TrimSpace(f.sessionKey); key != "" {
		return key
	}
	return strings.TrimSpace(f.surface) + ":" + strings.TrimSpace(f.sender)
}

func (f *messageFlags) message(body string) application.Message {
	return application.Message{
		Surface:          strings.TrimSpace(f.surface),
		AccountID:        strings.TrimSpace(f.account),
		SenderID:         strings.TrimSpace(f.sender),
		IsGroup:          f.group,
		Body:             body,
		SessionKey:       f.key(),
		TargetSessionKey: strings.TrimSpace(f.target),
	}
}
