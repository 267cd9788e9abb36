package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bnema/chatgate/internal/domain"
	"github.com/bnema/chatgate/internal/ports"
	"github.com/spf13/viper"
)

const (
	usagePathKey = "usage.path"
	usageDir     = ".chatgate"
	usageFile    = "usage.jsonl"

	defaultSummaryDays = 30
	dateLayout         = "2006-01-02"
	maxLineBytes       = 1 << 20
)

// record is one line of the usage ledger written by the agent engine.
// cost_usd is absent when the provider did not report pricing.
type record struct {
	Timestamp    time.Time `json:"ts"`
	SessionID    string    `json:"session_id"`
	InputTokens  int64     `json:"input_tokens"`
	OutputTokens int64     `json:"output_tokens"`
	TotalTokens  int64     `json:"total_tokens"`
	CostUSD      *float64  `json:"cost_usd"`
}

func (r record) tokens() int64 {
	if r.TotalTokens > 0 {
		return r.TotalTokens
	}
	return r.InputTokens + r.OutputTokens
}

// Ledger reads usage cost from a JSONL file. A missing ledger reports zero
// usage.
type Ledger struct {
	path string
}

var _ ports.UsageCostSource = (*Ledger)(nil)

func NewLedger(cfg *viper.Viper) (*Ledger, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(usagePathKey, filepath.Join(homeDir, usageDir, usageFile))

	path := cfg.GetString(usagePathKey)
	if path == "" {
		return nil, errors.New("usage ledger path is empty")
	}
	return NewLedgerAt(path), nil
}

func NewLedgerAt(path string) *Ledger {
	return &Ledger{path: filepath.Clean(path)}
}

func (l *Ledger) Path() string {
	return l.path
}

func (l *Ledger) SessionCost(ctx context.Context, sessionID string) (domain.CostTotals, error) {
	var totals domain.CostTotals
	if sessionID == "" {
		return totals, nil
	}

	err := l.scan(ctx, func(r record) {
		if r.SessionID == sessionID {
			totals.Add(r.tokens(), r.CostUSD)
		}
	})
	return totals, err
}

// Summary totals the last days calendar days up to and including now's day,
// in now's location.
func (l *Ledger) Summary(ctx context.Context, days int, now time.Time) (domain.CostSummary, error) {
	if days <= 0 {
		days = defaultSummaryDays
	}

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	since := today.AddDate(0, 0, -(days - 1))

	summary := domain.CostSummary{Days: days}
	byDate := map[string]*domain.CostTotals{}
	err := l.scan(ctx, func(r record) {
		at := r.Timestamp.In(loc)
		if at.Before(since) || at.After(now) {
			return
		}
		date := at.Format(dateLayout)
		if byDate[date] == nil {
			byDate[date] = &domain.CostTotals{}
		}
		byDate[date].Add(r.tokens(), r.CostUSD)
		summary.Totals.Add(r.tokens(), r.CostUSD)
	})
	if err != nil {
		return domain.CostSummary{}, err
	}

	for date, totals := range byDate {
		summary.Daily = append(summary.Daily, domain.DailyCost{Date: date, CostTotals: *totals})
	}
	sort.Slice(summary.Daily, func(i, j int) bool {
		return summary.Daily[i].Date < summary.Daily[j].Date
	})
	return summary, nil
}

func (l *Ledger) scan(ctx context.Context, visit func(record)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open usage ledger: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var r record
		if err := json.Unmarshal(line, &r); err != nil {
			continue
		}
		visit(r)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan usage ledger: %w", err)
	}
	return nil
}
