package domain

import "fmt"

type CostTotals struct {
	TotalTokens        int64
	TotalCost          float64
	MissingCostEntries int
	Entries            int
}

func (t CostTotals) HasCost() bool {
	return t.Entries > t.MissingCostEntries
}

func (t *CostTotals) Add(tokens int64, cost *float64) {
	t.Entries++
	t.TotalTokens += tokens
	if cost == nil {
		t.MissingCostEntries++
		return
	}
	t.TotalCost += *cost
}

type DailyCost struct {
	Date string
	CostTotals
}

type CostSummary struct {
	Days   int
	Daily  []DailyCost
	Totals CostTotals
}

func (s CostSummary) Day(date string) (DailyCost, bool) {
	for _, day := range s.Daily {
		if day.Date == date {
			return day, true
		}
	}
	return DailyCost{}, false
}

func FormatTokenCount(v int64) string {
	if v < 1_000 {
		return fmt.Sprintf("%d", v)
	}

	if v < 1_000_000 {
		return fmt.Sprintf("%.1fk", float64(v)/1_000)
	}

	return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
}

// FormatUSD renders dollars with cents, or four decimals below one cent.
func FormatUSD(v float64) string {
	if v > 0 && v < 0.01 {
		return fmt.Sprintf("$%.4f", v)
	}
	return fmt.Sprintf("$%.2f", v)
}
