package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/chatgate/internal/domain"
)

func (c *Commands) HandleConfig(ctx context.Context, req CommandRequest) *CommandResult {
	if !req.AllowTextCommands {
		return nil
	}
	command, ok := ParseConfigCommand(req.Command.Body)
	if !ok {
		return nil
	}
	if err := req.Command.Authorize(); err != nil {
		return c.ignoreUnauthorized("/config", req, err)
	}
	if err := requireFeature(req.Config, "config"); err != nil {
		return replyError(err)
	}
	if command.Action == ActionError {
		return replyText("⚠️ " + command.Message)
	}

	if command.Action == ActionSet || command.Action == ActionUnset {
		channelID := req.Command.Surface
		if !ConfigWritesAllowed(req.Config, channelID, req.Command.AccountID) {
			label, hint := "this channel", "channels.<channel>.configWrites=true"
			if channelID != "" {
				label, hint = channelID, fmt.Sprintf("channels.%s.configWrites=true", channelID)
			}
			return replyText(fmt.Sprintf("⚠️ Config writes are disabled for %s. Set %s to enable.", label, hint))
		}
	}

	switch command.Action {
	case ActionShow:
		shown, err := c.config.Show(ctx, command.Path)
		if err != nil {
			return c.configFailure(err, "show")
		}
		if command.Path == "" {
			return replyText("⚙️ Config (raw):\n" + jsonBlock(shown.Document))
		}
		return replyText(fmt.Sprintf("⚙️ Config %s:\n%s", command.Path, jsonBlock(shown.Value)))
	case ActionUnset:
		if _, err := c.config.Unset(ctx, command.Path); err != nil {
			if errors.Is(err, domain.ErrConfigValueNotFound) {
				return replyText(fmt.Sprintf("⚙️ No config value found for %s.", command.Path))
			}
			return c.configFailure(err, "unset")
		}
		return replyText(fmt.Sprintf("⚙️ Config updated: %s removed.", command.Path))
	case ActionSet:
		if _, err := c.config.Set(ctx, command.Path, command.Value); err != nil {
			return c.configFailure(err, "set")
		}
		return replyText(fmt.Sprintf("⚙️ Config updated: %s=%s", command.Path, FormatValueLabel(command.Value)))
	default:
		return replyText(fmt.Sprintf("⚠️ Unsupported /config action: %s.", command.Action))
	}
}

func (c *Commands) configFailure(err error, action string) *CommandResult {
	var pathErr *domain.PathError
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &pathErr):
		return replyText("⚠️ " + pathErr.Error())
	case errors.Is(err, domain.ErrInvalidDocument):
		return replyText("⚠️ Config file is invalid; fix it before using /config.")
	case errors.As(err, &validationErr):
		issue := validationErr.First()
		return replyText(fmt.Sprintf("⚠️ Config invalid after %s (%s: %s).", action, issue.Path, issue.Message))
	default:
		c.logger.Error("config command failed", "action", action, "error", err)
		return replyText(fmt.Sprintf("⚠️ Config %s failed: %v", action, err))
	}
}

func (c *Commands) HandleDebug(_ context.Context, req CommandRequest) *CommandResult {
	if !req.AllowTextCommands {
		return nil
	}
	command, ok := ParseDebugCommand(req.Command.Body)
	if !ok {
		return nil
	}
	if err := req.Command.Authorize(); err != nil {
		return c.ignoreUnauthorized("/debug", req, err)
	}
	if err := requireFeature(req.Config, "debug"); err != nil {
		return replyError(err)
	}

	switch command.Action {
	case ActionError:
		return replyText("⚠️ " + command.Message)
	case ActionShow:
		if c.overrides.Len() == 0 {
			return replyText("⚙️ Debug overrides: (none)")
		}
		return replyText("⚙️ Debug overrides (memory-only):\n" + jsonBlock(c.overrides.Snapshot()))
	case ActionReset:
		c.overrides.Reset()
		return replyText("⚙️ Debug overrides cleared; using config on disk.")
	case ActionUnset:
		removed, err := c.overrides.Unset(command.Path)
		if err != nil {
			return replyText("⚠️ " + err.Error())
		}
		if !removed {
			return replyText(fmt.Sprintf("⚙️ No debug override found for %s.", command.Path))
		}
		return replyText(fmt.Sprintf("⚙️ Debug override removed for %s.", command.Path))
	case ActionSet:
		if err := c.overrides.Set(command.Path, command.Value); err != nil {
			return replyText("⚠️ " + err.Error())
		}
		return replyText(fmt.Sprintf("⚙️ Debug override set: %s=%s", command.Path, FormatValueLabel(command.Value)))
	default:
		return replyText(fmt.Sprintf("⚠️ Unsupported /debug action: %s.", command.Action))
	}
}

func jsonBlock(value any) string {
	rendered, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		rendered = []byte("null")
	}
	return "```json\n" + string(rendered) + "\n```"
}
