package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestSendConfigSetPersistsValue(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `{"commands": {"config": true}}`))

	stdout, _, err := executeCLI(t, home, "send", "/config", "set", "gateway.port", "8080")
	require.NoError(t, err)
	assert.Contains(t, stdout, "⚙️ Config updated: gateway.port=8080")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(readConfigFixture(t, home), &doc))
	assert.Equal(t, map[string]any{"port": float64(8080)}, doc["gateway"])
	assert.Equal(t, map[string]any{"config": true}, doc["commands"])
}

func TestSendConfigSetRejectedByValidationLeavesFileUntouched(t *testing.T) {
	home := t.TempDir()
	original := `{"commands": {"config": true}, "gateway": {"port": 18789}}`
	require.NoError(t, writeConfigFixture(home, original))

	stdout, _, err := executeCLI(t, home, "send", "/config set gateway.port -1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "⚠️ Config invalid after set (gateway.port: must be an integer between 1 and 65535).")
	assert.Equal(t, original, string(readConfigFixture(t, home)))
}

func TestSendConfigDisabled(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "send", "/config show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "⚠️ /config is disabled. Set commands.config=true to enable.")
}

func TestSendJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `{"commands": {"config": true}, "gateway": {"mode": "local"}}`))

	stdout, _, err := executeCLI(t, home, "send", "--json", "/config get gateway.mode")
	require.NoError(t, err)

	var output sendOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	assert.True(t, output.Handled)
	assert.False(t, output.ShouldContinue)
	require.NotNil(t, output.Reply)
	assert.Equal(t, "⚙️ Config gateway.mode:\n```json\n\"local\"\n```", output.Reply.Text)

	stdout, _, err = executeCLI(t, home, "send", "--json", "hello there")
	require.NoError(t, err)
	var passThrough sendOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &passThrough))
	assert.Equal(t, sendOutput{}, passThrough)
}

func TestSendActivationPersistsSession(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "send", "--surface", "telegram", "--sender", "42", "--group", "/activation always")
	require.NoError(t, err)
	assert.Contains(t, stdout, "⚙️ Group activation set to always.")

	data, err := os.ReadFile(filepath.Join(home, ".chatgate", "sessions.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "telegram:42")
	assert.Contains(t, string(data), "group_activation")
	assert.Contains(t, string(data), "always")
}

func TestSendUnauthorizedSenderIsAbsorbed(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `{"commands": {"config": true, "allowFrom": ["telegram:1"]}}`))

	stdout, _, err := executeCLI(t, home, "send", "--surface", "telegram", "--sender", "2", "/config show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "handled without a reply")
}

func TestConsoleDispatchesEachLine(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `{"commands": {"debug": true}}`))

	input := strings.Join([]string{
		"/debug set gateway.mode remote",
		"/debug show",
		"",
		"hello agent",
		"/stop",
	}, "\n") + "\n"

	stdout, _, err := executeCLIWithInput(t, home, input, "console", "--no-watch")
	require.NoError(t, err)
	assert.Contains(t, stdout, `⚙️ Debug override set: gateway.mode="remote"`)
	assert.Contains(t, stdout, "⚙️ Debug overrides (memory-only):")
	assert.Contains(t, stdout, "› hello agent")
	assert.Contains(t, stdout, "not a command")
	assert.Contains(t, stdout, "⚙️ Agent was aborted.")
}

func TestConfigPathHonorsEnvironment(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".chatgate", "chatgate.json")+"\n", stdout)

	custom := filepath.Join(home, "gateway.yaml")
	t.Setenv("CHATGATE_CONFIG_PATH", custom)
	stdout, _, err = executeCLI(t, home, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, custom+"\n", stdout)
}

func TestConfigPathFromSettingsFile(t *testing.T) {
	home := t.TempDir()
	custom := filepath.Join(home, "gateway.toml")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".chatgate"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".chatgate", "settings.toml"), []byte("[config]\npath = '"+custom+"'\n"), 0o600))

	stdout, _, err := executeCLI(t, home, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, custom+"\n", stdout)
}

func TestConfigValidateReportsIssues(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `{"gateway": {"port": 0, "mode": "cloud"}}`))

	stdout, _, err := executeCLI(t, home, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 issue(s)")
	assert.Contains(t, stdout, "gateway.mode: must be \"local\" or \"remote\"")
	assert.Contains(t, stdout, "gateway.port: must be an integer between 1 and 65535")

	require.NoError(t, writeConfigFixture(home, `{"gateway": {"port": 8080}}`))
	stdout, _, err = executeCLI(t, home, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, ": ok")
}

func TestConfigValidateReportsUnparseableFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home, `{"gateway": `))

	stdout, _, err := executeCLI(t, home, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, stdout, "<root>: decode json")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home string, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home string, content string) error {
	configDir := filepath.Join(home, ".chatgate")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, "chatgate.json"), []byte(content), 0o600)
}

func readConfigFixture(t *testing.T, home string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(home, ".chatgate", "chatgate.json"))
	require.NoError(t, err)
	return data
}
