package application

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/kballard/go-shellquote"
	"github.com/tidwall/jsonc"
)

type DocumentAction string

const (
	ActionShow  DocumentAction = "show"
	ActionSet   DocumentAction = "set"
	ActionUnset DocumentAction = "unset"
	ActionReset DocumentAction = "reset"
	ActionError DocumentAction = "error"
)

// DocumentCommand is a parsed /config or /debug command.
type DocumentCommand struct {
	Action  DocumentAction
	Path    string
	Value   any
	Message string
}

var (
	configActions = map[string]DocumentAction{"show": ActionShow, "get": ActionShow, "set": ActionSet, "unset": ActionUnset}
	debugActions  = map[string]DocumentAction{"show": ActionShow, "set": ActionSet, "unset": ActionUnset, "reset": ActionReset}
)

func ParseConfigCommand(body string) (DocumentCommand, bool) {
	return parseDocumentCommand("/config", body, configActions)
}

func ParseDebugCommand(body string) (DocumentCommand, bool) {
	return parseDocumentCommand("/debug", body, debugActions)
}

func parseDocumentCommand(keyword, body string, actions map[string]DocumentAction) (DocumentCommand, bool) {
	args, ok := commandArgs(keyword, body)
	if !ok {
		return DocumentCommand{}, false
	}
	if args == "" {
		return DocumentCommand{Action: ActionShow}, true
	}

	word, rest := splitWord(args)
	action, known := actions[strings.ToLower(word)]
	if !known {
		return errorCommand(fmt.Sprintf("Unknown %s action: %s. Use %s.", keyword, word, actionList(actions))), true
	}

	switch action {
	case ActionShow:
		path, err := unquotePath(rest)
		if err != nil {
			return errorCommand(err.Error()), true
		}
		return DocumentCommand{Action: ActionShow, Path: path}, true
	case ActionReset:
		return DocumentCommand{Action: ActionReset}, true
	case ActionUnset:
		path, err := unquotePath(rest)
		if err != nil {
			return errorCommand(err.Error()), true
		}
		if path == "" {
			return errorCommand(fmt.Sprintf("Usage: %s unset <path>", keyword)), true
		}
		return DocumentCommand{Action: ActionUnset, Path: path}, true
	default:
		path, rawValue := splitAssignment(rest)
		if path == "" || rawValue == "" {
			return errorCommand(fmt.Sprintf("Usage: %s set <path> <value>", keyword)), true
		}
		return DocumentCommand{Action: ActionSet, Path: path, Value: ParseCommandValue(rawValue)}, true
	}
}

// ParseCommandValue reads a JSON or JSONC literal. Single-quoted text is taken
// as a shell word; anything that is not a literal becomes a plain string.
func ParseCommandValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "'") {
		if words, err := shellquote.Split(trimmed); err == nil && len(words) == 1 {
			return words[0]
		}
	}

	var value any
	if err := json.Unmarshal(jsonc.ToJSON([]byte(trimmed)), &value); err == nil {
		return domain.NormalizeValue(value)
	}
	return trimmed
}

// FormatValueLabel echoes a value back to the operator: strings quoted,
// everything else as JSON.
func FormatValueLabel(value any) string {
	if text, ok := value.(string); ok {
		return `"` + text + `"`
	}
	if value == nil {
		return "null"
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(encoded)
}

// commandArgs matches "<keyword>" or "<keyword> args" and returns the trimmed args.
func commandArgs(keyword, body string) (string, bool) {
	body = strings.TrimSpace(body)
	if body == keyword {
		return "", true
	}
	if !strings.HasPrefix(body, keyword) {
		return "", false
	}
	rest := body[len(keyword):]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t' && rest[0] != ':') {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(rest, ":")), true
}

// commandWords splits arguments the way a shell would.
func commandWords(args string) ([]string, error) {
	words, err := shellquote.Split(args)
	if err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	return words, nil
}

func splitWord(args string) (string, string) {
	args = strings.TrimSpace(args)
	idx := strings.IndexAny(args, " \t")
	if idx < 0 {
		return args, ""
	}
	return args[:idx], strings.TrimSpace(args[idx+1:])
}

// splitAssignment accepts "path value" and "path=value".
func splitAssignment(args string) (string, string) {
	word, rest := splitWord(args)
	if eq := strings.IndexByte(word, '='); eq >= 0 {
		path := strings.TrimSpace(word[:eq])
		value := strings.TrimSpace(word[eq+1:])
		if rest != "" {
			value = strings.TrimSpace(value + " " + rest)
		}
		return path, value
	}
	if strings.HasPrefix(rest, "=") {
		return word, strings.TrimSpace(rest[1:])
	}
	return word, rest
}

func unquotePath(args string) (string, error) {
	if args == "" {
		return "", nil
	}
	words, err := commandWords(args)
	if err != nil {
		return "", err
	}
	if len(words) != 1 {
		return "", fmt.Errorf("expected a single path, got %q", args)
	}
	return words[0], nil
}

func actionList(actions map[string]DocumentAction) string {
	order := []string{"show", "get", "set", "unset", "reset"}
	names := make([]string, 0, len(actions))
	for _, name := range order {
		if _, ok := actions[name]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func errorCommand(message string) DocumentCommand {
	return DocumentCommand{Action: ActionError, Message: message}
}
