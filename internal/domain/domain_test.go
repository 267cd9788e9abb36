package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigPathAcceptsDottedAndIndexedPaths(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ConfigPath
	}{
		{name: "single key", raw: "gateway", want: ConfigPath{KeySegment("gateway")}},
		{name: "dotted", raw: "a.b.c", want: ConfigPath{KeySegment("a"), KeySegment("b"), KeySegment("c")}},
		{name: "indexed", raw: "a.b[0].c", want: ConfigPath{KeySegment("a"), KeySegment("b"), IndexSegment(0), KeySegment("c")}},
		{name: "nested index", raw: "matrix[1][2]", want: ConfigPath{KeySegment("matrix"), IndexSegment(1), IndexSegment(2)}},
		{name: "trims whitespace", raw: "  a . b  ", want: ConfigPath{KeySegment("a"), KeySegment("b")}},
		{name: "numeric key stays a key", raw: "a.0", want: ConfigPath{KeySegment("a"), KeySegment("0")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfigPath(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConfigPathRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "empty", raw: "", wantErr: "path is empty"},
		{name: "blank", raw: "   ", wantErr: "path is empty"},
		{name: "leading dot", raw: ".a", wantErr: "empty segment"},
		{name: "trailing dot", raw: "a.", wantErr: "empty segment"},
		{name: "double dot", raw: "a..b", wantErr: "empty segment"},
		{name: "root index", raw: "[0]", wantErr: "must start with a key"},
		{name: "dot before index", raw: "a.[0]", wantErr: "empty segment before index"},
		{name: "unclosed bracket", raw: "a[0", wantErr: "unclosed"},
		{name: "non numeric index", raw: "a[x]", wantErr: "non-negative integer"},
		{name: "negative index", raw: "a[-1]", wantErr: "non-negative integer"},
		{name: "empty index", raw: "a[]", wantErr: "non-negative integer"},
		{name: "stray close", raw: "a]b", wantErr: "unexpected ']'"},
		{name: "key glued to index", raw: "a[0]b", wantErr: "after index"},
		{name: "reserved key", raw: "a.__proto__.b", wantErr: "reserved"},
		{name: "index above max", raw: "a[10000]", wantErr: "index out of range"},
		{name: "index overflows int", raw: "a[99999999999999999999]", wantErr: "index out of range"},
		{name: "huge index", raw: "a[99999999999999]", wantErr: "index out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfigPath(tt.raw)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidPath)
			assert.ErrorContains(t, err, tt.wantErr)

			var pathErr *PathError
			require.True(t, errors.As(err, &pathErr))
			assert.Equal(t, tt.raw, pathErr.Raw)
		})
	}
}

func TestConfigPathStringRoundTrips(t *testing.T) {
	for _, raw := range []string{"a", "a.b", "a.b[0].c", "list[3][1]"} {
		path, err := ParseConfigPath(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, path.String())
	}
}

func TestSetThenGetRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		value any
	}{
		{name: "new nested object", raw: "a.b", value: float64(5)},
		{name: "deep string", raw: "x.y.z", value: "hello"},
		{name: "array element", raw: "list[2]", value: true},
		{name: "object inside array", raw: "items[0].name", value: "first"},
		{name: "null value", raw: "a.n", value: nil},
		{name: "object value", raw: "obj", value: map[string]any{"k": "v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{"commands": map[string]any{"config": true}}
			path, err := ParseConfigPath(tt.raw)
			require.NoError(t, err)

			require.NoError(t, SetAtPath(doc, path, tt.value))

			got, ok := GetAtPath(doc, path)
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
			assert.Equal(t, true, doc["commands"].(map[string]any)["config"])
		})
	}
}

func TestSetAtPathPadsArraysAndReplacesScalars(t *testing.T) {
	doc := Document{"a": float64(1)}

	require.NoError(t, SetAtPath(doc, mustPath(t, "a.b"), "x"))
	assert.Equal(t, Document{"a": map[string]any{"b": "x"}}, doc)

	require.NoError(t, SetAtPath(doc, mustPath(t, "list[2]"), "z"))
	assert.Equal(t, []any{nil, nil, "z"}, doc["list"])
}

func TestParseConfigPathAcceptsMaxIndex(t *testing.T) {
	path, err := ParseConfigPath("a[9999]")
	require.NoError(t, err)
	assert.Equal(t, ConfigPath{KeySegment("a"), IndexSegment(MaxPathIndex)}, path)
}

func TestSetAtPathRejectsIndexBeyondMax(t *testing.T) {
	doc := Document{}

	err := SetAtPath(doc, ConfigPath{KeySegment("list"), IndexSegment(MaxPathIndex + 1)}, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.ErrorContains(t, err, "index out of range")
	assert.Empty(t, doc)
}

func TestGetAtPathAbsentIsNotAnError(t *testing.T) {
	doc := Document{"a": map[string]any{"b": []any{"x"}}}

	for _, raw := range []string{"missing", "a.c", "a.b[3]", "a.b.c", "a.b[0].c"} {
		got, ok := GetAtPath(doc, mustPath(t, raw))
		assert.False(t, ok, raw)
		assert.Nil(t, got, raw)
	}
}

func TestUnsetAtPath(t *testing.T) {
	t.Run("absent path leaves document unchanged", func(t *testing.T) {
		doc := Document{"a": map[string]any{"b": float64(1)}}
		before := CloneDocument(doc)

		assert.False(t, UnsetAtPath(doc, mustPath(t, "a.c")))
		assert.False(t, UnsetAtPath(doc, mustPath(t, "x.y")))
		assert.Equal(t, before, doc)
	})

	t.Run("present path is removed and empty parents pruned", func(t *testing.T) {
		doc := Document{"keep": true, "a": map[string]any{"b": map[string]any{"c": float64(1)}}}

		assert.True(t, UnsetAtPath(doc, mustPath(t, "a.b.c")))
		_, ok := GetAtPath(doc, mustPath(t, "a.b.c"))
		assert.False(t, ok)
		assert.Equal(t, Document{"keep": true}, doc)
	})

	t.Run("sibling keeps parent alive", func(t *testing.T) {
		doc := Document{"a": map[string]any{"b": float64(1), "c": float64(2)}}

		assert.True(t, UnsetAtPath(doc, mustPath(t, "a.b")))
		assert.Equal(t, Document{"a": map[string]any{"c": float64(2)}}, doc)
	})

	t.Run("array element is spliced", func(t *testing.T) {
		doc := Document{"list": []any{"a", "b", "c"}}

		assert.True(t, UnsetAtPath(doc, mustPath(t, "list[1]")))
		assert.Equal(t, []any{"a", "c"}, doc["list"])
		assert.False(t, UnsetAtPath(doc, mustPath(t, "list[5]")))
	})
}

func TestCloneDocumentIsolatesMutations(t *testing.T) {
	snapshot := Document{"a": map[string]any{"list": []any{float64(1)}}}
	clone := CloneDocument(snapshot)

	require.NoError(t, SetAtPath(clone, mustPath(t, "a.list[0]"), float64(9)))
	require.NoError(t, SetAtPath(clone, mustPath(t, "a.b"), "new"))

	assert.Equal(t, Document{"a": map[string]any{"list": []any{float64(1)}}}, snapshot)
}

func TestMergeDocumentsOverlaysObjectsDeeply(t *testing.T) {
	base := Document{"commands": map[string]any{"config": false, "debug": true}, "gateway": map[string]any{"port": float64(8080)}}
	overlay := Document{"commands": map[string]any{"config": true}, "gateway": "replaced"}

	merged := MergeDocuments(base, overlay)

	assert.Equal(t, Document{"commands": map[string]any{"config": true, "debug": true}, "gateway": "replaced"}, merged)
	assert.Equal(t, false, base["commands"].(map[string]any)["config"])
}

func TestNormalizeValueConvertsDecoderTypes(t *testing.T) {
	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	got := NormalizeValue(map[string]any{
		"int":   int64(3),
		"yaml":  map[any]any{"k": 1},
		"when":  at,
		"table": []map[string]any{{"port": int64(1)}},
	})

	assert.Equal(t, map[string]any{
		"int":   float64(3),
		"yaml":  map[string]any{"k": float64(1)},
		"when":  "2026-10-19T08:00:00Z",
		"table": []any{map[string]any{"port": float64(1)}},
	}, got)
}

func TestUsageDisplayCycle(t *testing.T) {
	assert.Equal(t, UsageDisplayTokens, UsageDisplay("").Next())
	assert.Equal(t, UsageDisplayTokens, UsageDisplayOff.Next())
	assert.Equal(t, UsageDisplayFull, UsageDisplayTokens.Next())
	assert.Equal(t, UsageDisplayOff, UsageDisplayFull.Next())
	assert.Equal(t, UsageDisplayOff, UsageDisplay("bogus").Next().Next().Next())
}

func TestParseSendPolicy(t *testing.T) {
	tests := []struct {
		raw    string
		want   SendPolicy
		wantOK bool
		label  string
	}{
		{raw: "on", want: SendPolicyAllow, wantOK: true, label: "on"},
		{raw: "ALLOW", want: SendPolicyAllow, wantOK: true, label: "on"},
		{raw: "off", want: SendPolicyDeny, wantOK: true, label: "off"},
		{raw: "inherit", want: "", wantOK: true, label: "inherit"},
		{raw: "maybe", want: "", wantOK: false, label: "inherit"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseSendPolicy(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
		})
	}
}

func TestIsAbortTrigger(t *testing.T) {
	for _, text := range []string{"stop", " STOP ", "esc", "abort", "wait", "exit", "interrupt"} {
		assert.True(t, IsAbortTrigger(text), text)
	}
	for _, text := range []string{"", "/stop", "please stop", "stopping"} {
		assert.False(t, IsAbortTrigger(text), text)
	}
}

func TestFormatTokenCountAndUSD(t *testing.T) {
	assert.Equal(t, "999", FormatTokenCount(999))
	assert.Equal(t, "2.0k", FormatTokenCount(2_000))
	assert.Equal(t, "1.5M", FormatTokenCount(1_500_000))
	assert.Equal(t, "$1.25", FormatUSD(1.25))
	assert.Equal(t, "$0.0042", FormatUSD(0.0042))
	assert.Equal(t, "$0.00", FormatUSD(0))
}

func mustPath(t *testing.T, raw string) ConfigPath {
	t.Helper()

	path, err := ParseConfigPath(raw)
	require.NoError(t, err)
	return path
}

func TestFeatureDisabledError(t *testing.T) {
	err := error(&FeatureDisabledError{Command: "restart"})

	assert.ErrorIs(t, err, ErrFeatureDisabled)
	assert.EqualError(t, err, "/restart is disabled. Set commands.restart=true to enable.")
}

func TestRestartMethodErr(t *testing.T) {
	assert.NoError(t, RestartMethod{OK: true, Method: "launchctl"}.Err())

	err := RestartMethod{Method: "launchctl", Detail: "service not loaded"}.Err()
	assert.ErrorIs(t, err, ErrRestartFailed)
	assert.EqualError(t, err, "restart failed via launchctl: service not loaded")

	assert.EqualError(t, RestartMethod{Method: "unsupported"}.Err(), "restart failed via unsupported")
}
