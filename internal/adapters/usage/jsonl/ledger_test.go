package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLedger(t *testing.T, lines ...string) *Ledger {
	t.Helper()

	path := filepath.Join(t.TempDir(), "usage.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return NewLedgerAt(path)
}

func TestLedgerSessionCost(t *testing.T) {
	t.Parallel()

	ledger := writeLedger(t,
		`{"ts":"2026-10-19T08:00:00Z","session_id":"s1","total_tokens":1000,"cost_usd":0.5}`,
		`{"ts":"2026-10-19T09:00:00Z","session_id":"s1","input_tokens":200,"output_tokens":300}`,
		`{"ts":"2026-10-19T09:30:00Z","session_id":"s2","total_tokens":50,"cost_usd":1}`,
		`not json`,
		``,
	)

	totals, err := ledger.SessionCost(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.CostTotals{TotalTokens: 1500, TotalCost: 0.5, MissingCostEntries: 1, Entries: 2}, totals)
	assert.True(t, totals.HasCost())

	none, err := ledger.SessionCost(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, none.Entries)
}

func TestLedgerSummaryWindowAndDaily(t *testing.T) {
	t.Parallel()

	ledger := writeLedger(t,
		`{"ts":"2026-09-19T23:00:00Z","session_id":"old","total_tokens":10,"cost_usd":9}`,
		`{"ts":"2026-09-20T01:00:00Z","session_id":"a","total_tokens":10,"cost_usd":1}`,
		`{"ts":"2026-10-18T12:00:00Z","session_id":"a","total_tokens":20,"cost_usd":2}`,
		`{"ts":"2026-10-19T07:00:00Z","session_id":"b","total_tokens":30}`,
		`{"ts":"2026-10-19T08:00:00Z","session_id":"b","total_tokens":40,"cost_usd":0.25}`,
		`{"ts":"2026-10-19T23:00:00Z","session_id":"future","total_tokens":99,"cost_usd":99}`,
	)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	summary, err := ledger.Summary(context.Background(), 30, now)
	require.NoError(t, err)

	assert.Equal(t, 30, summary.Days)
	assert.Equal(t, domain.CostTotals{TotalTokens: 100, TotalCost: 3.25, MissingCostEntries: 1, Entries: 4}, summary.Totals)
	require.Len(t, summary.Daily, 3)
	assert.Equal(t, "2026-09-20", summary.Daily[0].Date)
	assert.Equal(t, "2026-10-18", summary.Daily[1].Date)

	today, ok := summary.Day("2026-10-19")
	require.True(t, ok)
	assert.Equal(t, domain.CostTotals{TotalTokens: 70, TotalCost: 0.25, MissingCostEntries: 1, Entries: 2}, today.CostTotals)
}

func TestLedgerMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	ledger := NewLedgerAt(filepath.Join(t.TempDir(), "missing.jsonl"))

	summary, err := ledger.Summary(context.Background(), 0, time.Now())
	require.NoError(t, err)
	assert.Equal(t, defaultSummaryDays, summary.Days)
	assert.Empty(t, summary.Daily)

	totals, err := ledger.SessionCost(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, totals.HasCost())
}

func TestLedgerCanceledContext(t *testing.T) {
	t.Parallel()

	ledger := writeLedger(t, `{"ts":"2026-10-19T08:00:00Z","session_id":"s1","total_tokens":1}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ledger.SessionCost(ctx, "s1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewLedgerDefaultPath(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	ledger, err := NewLedger(viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".chatgate", "usage.jsonl"), ledger.Path())

	config := viper.New()
	config.Set("usage.path", filepath.Join(homeDir, "custom.jsonl"))
	ledger, err = NewLedger(config)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "custom.jsonl"), ledger.Path())
}
