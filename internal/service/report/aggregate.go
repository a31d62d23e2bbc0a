package report

import (
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type counter struct {
	index map[string]int
	dist  domain.Distribution
}

func newCounter() *counter {
	return &counter{index: make(map[string]int), dist: domain.Distribution{}}
}

// add ignores empty keys: records without a value are not bucketed.
func (c *counter) add(key string) {
	if key == "" {
		return
	}
	if i, ok := c.index[key]; ok {
		c.dist[i].Count++
		return
	}
	c.index[key] = len(c.dist)
	c.dist = append(c.dist, domain.CategoryCount{Name: key, Count: 1})
}

// Compute summarizes records in a single pass. It never fails: an empty
// input gives zero totals, zero averages and empty distributions.
func Compute(records []*domain.Business) *domain.Statistics {
	stats := &domain.Statistics{
		TotalBudget:  decimal.Zero,
		TotalCapital: decimal.Zero,
		AvgBudget:    decimal.Zero,
		AvgCapital:   decimal.Zero,
	}

	byType, byCategory, byStatus := newCounter(), newCounter(), newCounter()
	for _, r := range records {
		if r == nil {
			continue
		}
		stats.Total++
		if r.Status == domain.StatusActive {
			stats.ActiveCount++
		} else {
			stats.InactiveCount++
		}

		stats.TotalBudget = stats.TotalBudget.Add(r.Budget)
		stats.TotalCapital = stats.TotalCapital.Add(r.InitialCapital)
		stats.TotalEmployees += r.Employees

		byType.add(r.BusinessType)
		byCategory.add(r.Category)
		byStatus.add(string(r.Status))
	}

	stats.ByBusinessType = byType.dist
	stats.ByCategory = byCategory.dist
	stats.ByStatus = byStatus.dist

	if stats.Total > 0 {
		n := decimal.NewFromInt(int64(stats.Total))
		stats.AvgBudget = stats.TotalBudget.Div(n)
		stats.AvgCapital = stats.TotalCapital.Div(n)
		stats.AvgEmployees = float64(stats.TotalEmployees) / float64(stats.Total)
	}

	return stats
}

// Percent is round(count/total*100), rounding halves up; 0 when total is 0.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).
		IntPart())
}
