package rules

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports"
)

const (
	minPort = 1
	maxPort = 65535
)

var (
	commandFlags = []string{"config", "debug", "restart", "text"}
	gatewayModes = []string{"local", "remote"}
)

// Builtin checks the sections the gateway itself reads. Unknown top-level
// keys belong to plugins and pass through.
func Builtin() ports.ConfigValidator {
	return ports.ConfigValidatorFunc(func(doc domain.Document) domain.ValidationResult {
		c := &checker{}
		c.commands(doc["commands"])
		c.gateway(doc["gateway"])
		c.channels(doc["channels"])
		c.session(doc["session"])
		c.agents(doc["agents"])

		if len(c.issues) > 0 {
			return domain.Invalid(c.issues...)
		}
		return domain.Valid(doc)
	})
}

type checker struct {
	issues []domain.ValidationIssue
}

func (c *checker) add(path, message string) {
	c.issues = append(c.issues, domain.ValidationIssue{Path: path, Message: message})
}

// section returns the object at path, recording an issue when something
// other than an object sits there.
func (c *checker) section(path string, value any) (map[string]any, bool) {
	if value == nil {
		return nil, false
	}
	obj, ok := value.(map[string]any)
	if !ok {
		c.add(path, "must be an object")
		return nil, false
	}
	return obj, true
}

func (c *checker) boolean(path string, obj map[string]any, key string) {
	value, ok := obj[key]
	if !ok {
		return
	}
	if _, isBool := value.(bool); !isBool {
		c.add(path+"."+key, "must be a boolean")
	}
}

func (c *checker) commands(value any) {
	commands, ok := c.section("commands", value)
	if !ok {
		return
	}
	for _, flag := range commandFlags {
		c.boolean("commands", commands, flag)
	}

	raw, present := commands["allowFrom"]
	if !present {
		return
	}
	entries, isArray := raw.([]any)
	if !isArray {
		c.add("commands.allowFrom", "must be an array of sender ids")
		return
	}
	for i, entry := range entries {
		if _, isString := entry.(string); !isString {
			c.add(fmt.Sprintf("commands.allowFrom[%d]", i), "must be a string")
		}
	}
}

func (c *checker) gateway(value any) {
	gateway, ok := c.section("gateway", value)
	if !ok {
		return
	}

	if port, present := gateway["port"]; present {
		number, isNumber := port.(float64)
		if !isNumber || !domain.IsInteger(number) || number < minPort || number > maxPort {
			c.add("gateway.port", fmt.Sprintf("must be an integer between %d and %d", minPort, maxPort))
		}
	}

	if mode, present := gateway["mode"]; present {
		text, isString := mode.(string)
		if !isString || !slices.Contains(gatewayModes, text) {
			c.add("gateway.mode", `must be "local" or "remote"`)
		}
	}
}

func (c *checker) channels(value any) {
	channels, ok := c.section("channels", value)
	if !ok {
		return
	}

	for _, id := range sortedKeys(channels) {
		channelPath := "channels." + id
		channel, ok := c.section(channelPath, channels[id])
		if !ok {
			continue
		}
		c.boolean(channelPath, channel, "configWrites")

		accounts, ok := c.section(channelPath+".accounts", channel["accounts"])
		if !ok {
			continue
		}
		for _, accountID := range sortedKeys(accounts) {
			accountPath := channelPath + ".accounts." + accountID
			account, ok := c.section(accountPath, accounts[accountID])
			if !ok {
				continue
			}
			c.boolean(accountPath, account, "configWrites")
		}
	}
}

func (c *checker) session(value any) {
	session, ok := c.section("session", value)
	if !ok {
		return
	}

	if store, present := session["store"]; present {
		if _, isString := store.(string); !isString {
			c.add("session.store", "must be a string")
		}
	}
	if idle, present := session["idleMinutes"]; present {
		if !domain.IsInteger(idle) || idle.(float64) < 0 {
			c.add("session.idleMinutes", "must be a non-negative integer")
		}
	}
}

func (c *checker) agents(value any) {
	agents, ok := c.section("agents", value)
	if !ok {
		return
	}
	subagents, ok := c.section("agents.subagents", agents["subagents"])
	if !ok {
		return
	}
	if limit, present := subagents["maxConcurrent"]; present {
		if !domain.IsInteger(limit) || limit.(float64) < 1 {
			c.add("agents.subagents.maxConcurrent", "must be a positive integer")
		}
	}
}

func sortedKeys(obj map[string]any) []string {
	return slices.Sorted(maps.Keys(obj))
}
