package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Distribution is a categorical histogram kept in first-seen order.
type Distribution []CategoryCount

// Sorted returns a copy ordered by descending count. Equal counts keep
// their first-seen order.
func (d Distribution) Sorted() Distribution {
	out := make(Distribution, len(d))
	copy(out, d)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func (d Distribution) Get(name string) int {
	for _, c := range d {
		if c.Name == name {
			return c.Count
		}
	}
	return 0
}

func (d Distribution) Map() map[string]int {
	m := make(map[string]int, len(d))
	for _, c := range d {
		m[c.Name] = c.Count
	}
	return m
}

type Statistics struct {
	Total          int             `json:"total"`
	ActiveCount    int             `json:"active_count"`
	InactiveCount  int             `json:"inactive_count"`
	TotalBudget    decimal.Decimal `json:"total_budget"`
	TotalCapital   decimal.Decimal `json:"total_capital"`
	TotalEmployees int             `json:"total_employees"`
	ByBusinessType Distribution    `json:"by_business_type"`
	ByCategory     Distribution    `json:"by_category"`
	ByStatus       Distribution    `json:"by_status"`
	AvgBudget      decimal.Decimal `json:"avg_budget"`
	AvgCapital     decimal.Decimal `json:"avg_capital"`
	AvgEmployees   float64         `json:"avg_employees"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
