package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/chatgate/internal/domain"
)

func (c *Commands) HandleActivation(ctx context.Context, req CommandRequest) *CommandResult {
	if !req.AllowTextCommands {
		return nil
	}
	args, ok := commandArgs("/activation", req.Command.Body)
	if !ok {
		return nil
	}
	if !req.Command.IsGroup {
		return replyText("⚙️ Group activation only applies to group chats.")
	}
	if err := req.Command.Authorize(); err != nil {
		return c.ignoreUnauthorized("/activation", req, err)
	}

	mode, ok := domain.ParseGroupActivation(singleWord(args))
	if !ok {
		return replyText("⚙️ Usage: /activation mention|always")
	}

	c.updateSession(ctx, req, func(entry *domain.SessionEntry) {
		entry.GroupActivation = mode
		entry.GroupActivationNeedsIntro = true
	})
	return replyText(fmt.Sprintf("⚙️ Group activation set to %s.", mode))
}

func (c *Commands) HandleSendPolicy(ctx context.Context, req CommandRequest) *CommandResult {
	if !req.AllowTextCommands {
		return nil
	}
	args, ok := commandArgs("/send", req.Command.Body)
	if !ok {
		return nil
	}
	if err := req.Command.Authorize(); err != nil {
		return c.ignoreUnauthorized("/send", req, err)
	}

	policy, ok := domain.ParseSendPolicy(singleWord(args))
	if !ok {
		return replyText("⚙️ Usage: /send on|off|inherit")
	}

	c.updateSession(ctx, req, func(entry *domain.SessionEntry) {
		entry.SendPolicy = policy
	})
	return replyText(fmt.Sprintf("⚙️ Send policy set to %s.", policy.Label()))
}

func (c *Commands) HandleUsage(ctx context.Context, req CommandRequest) *CommandResult {
	if !req.AllowTextCommands {
		return nil
	}
	args, ok := commandArgs("/usage", req.Command.Body)
	if !ok {
		return nil
	}
	if err := req.Command.Authorize(); err != nil {
		return c.ignoreUnauthorized("/usage", req, err)
	}

	if strings.HasPrefix(strings.ToLower(args), "cost") {
		return replyText(c.usageCostText(ctx, req.SessionEntry))
	}

	var next domain.UsageDisplay
	if args != "" {
		requested, ok := domain.NormalizeUsageDisplay(args)
		if !ok {
			return replyText("⚙️ Usage: /usage off|tokens|full|cost")
		}
		next = requested
	} else {
		var current domain.UsageDisplay
		if req.SessionEntry != nil {
			current = req.SessionEntry.ResponseUsage
		}
		next = current.Next()
	}

	c.updateSession(ctx, req, func(entry *domain.SessionEntry) {
		if next == domain.UsageDisplayOff {
			entry.ResponseUsage = ""
			return
		}
		entry.ResponseUsage = next
	})
	return replyText(fmt.Sprintf("⚙️ Usage footer: %s.", next))
}

func (c *Commands) usageCostText(ctx context.Context, entry *domain.SessionEntry) string {
	const na = "n/a"
	now := c.clock.Now()

	sessionLine := "Session " + na
	if c.usage != nil && entry != nil && entry.SessionID != "" {
		totals, err := c.usage.SessionCost(ctx, entry.SessionID)
		if err != nil {
			c.logger.Warn("load session cost", "session", entry.SessionID, "error", err)
		} else if totals.Entries > 0 {
			cost := na
			if totals.HasCost() {
				cost = domain.FormatUSD(totals.TotalCost)
			}
			sessionLine = "Session " + cost + partialSuffix(totals)
			if totals.TotalTokens > 0 {
				sessionLine += " · " + domain.FormatTokenCount(totals.TotalTokens) + " tokens"
			}
		}
	}

	var summary domain.CostSummary
	if c.usage != nil {
		loaded, err := c.usage.Summary(ctx, 30, now)
		if err != nil {
			c.logger.Warn("load usage summary", "error", err)
		} else {
			summary = loaded
		}
	}

	todayLine := "Today " + na
	if day, ok := summary.Day(now.Format("2006-01-02")); ok && day.HasCost() {
		todayLine = "Today " + domain.FormatUSD(day.TotalCost) + partialSuffix(day.CostTotals)
	}

	lastLine := "Last 30d " + na
	if summary.Totals.HasCost() {
		lastLine = "Last 30d " + domain.FormatUSD(summary.Totals.TotalCost) + partialSuffix(summary.Totals)
	}

	return strings.Join([]string{"💸 Usage cost", sessionLine, todayLine, lastLine}, "\n")
}

func partialSuffix(totals domain.CostTotals) string {
	if totals.MissingCostEntries > 0 {
		return " (partial)"
	}
	return ""
}

func (c *Commands) HandleRestart(ctx context.Context, req CommandRequest) *CommandResult {
	if !req.AllowTextCommands {
		return nil
	}
	if strings.TrimSpace(req.Command.Body) != "/restart" {
		return nil
	}
	if err := req.Command.Authorize(); err != nil {
		return c.ignoreUnauthorized("/restart", req, err)
	}
	if err := requireFeature(req.Config, "restart"); err != nil {
		return replyError(err)
	}

	method := c.restarts.Restart(ctx, "/restart")
	if err := method.Err(); err != nil {
		detail := ""
		if method.Detail != "" {
			detail = " Details: " + method.Detail
		}
		c.logger.Warn("restart command failed", "error", err)
		return replyText(fmt.Sprintf("⚠️ Restart failed (%s).%s", method.Method, detail))
	}
	if method.Method == domain.RestartMethodSignal {
		return replyText("⚙️ Restarting gateway in-process (SIGUSR1); back in a few seconds.")
	}
	return replyText(fmt.Sprintf("⚙️ Restarting gateway via %s; give me a few seconds to come back online.", method.Method))
}

func (c *Commands) HandleStop(ctx context.Context, req CommandRequest) *CommandResult {
	if !req.AllowTextCommands {
		return nil
	}
	if strings.TrimSpace(req.Command.Body) != "/stop" {
		return nil
	}
	if err := req.Command.Authorize(); err != nil {
		return c.ignoreUnauthorized("/stop", req, err)
	}

	outcome := c.aborts.Abort(ctx, c.abortRequest(req, true))
	return replyText(formatAbortReply(outcome.SubagentsStopped))
}

func (c *Commands) HandleAbortTrigger(ctx context.Context, req CommandRequest) *CommandResult {
	if !req.AllowTextCommands {
		return nil
	}
	if !domain.IsAbortTrigger(req.Command.RawBody) {
		return nil
	}

	c.aborts.Abort(ctx, c.abortRequest(req, false))
	return replyText("⚙️ Agent was aborted.")
}

func (c *Commands) abortRequest(req CommandRequest, stop bool) AbortRequest {
	var table SessionLookup
	if c.sessions != nil {
		table = c.sessions.Table()
	}

	return AbortRequest{
		Target:        ResolveAbortTarget(req.Command.TargetSessionKey, req.SessionKey, req.SessionEntry, table),
		AbortKey:      req.Command.AbortKey,
		Stop:          stop,
		SessionKey:    req.SessionKey,
		SessionEntry:  req.SessionEntry,
		CommandSource: req.Command.Surface,
		SenderID:      req.Command.SenderID,
	}
}

func formatAbortReply(stopped int) string {
	if stopped <= 0 {
		return "⚙️ Agent was aborted."
	}
	return fmt.Sprintf("⚙️ Agent was aborted. Stopped %d sub-agent(s).", stopped)
}

// updateSession applies mutate to the message's own session. Messages without
// a stored session are acknowledged without a write.
func (c *Commands) updateSession(ctx context.Context, req CommandRequest, mutate func(entry *domain.SessionEntry)) {
	if c.sessions == nil || req.SessionEntry == nil || req.SessionKey == "" {
		return
	}
	c.sessions.Apply(ctx, req.SessionKey, *req.SessionEntry, mutate)
}

// singleWord returns the first shell word of args, or "" when args has none.
func singleWord(args string) string {
	words, err := commandWords(args)
	if err != nil || len(words) == 0 {
		return ""
	}
	return words[0]
}
