package report

import (
	"reflect"
	"testing"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/shopspring/decimal"
)

func rupiah(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCompute_Empty(t *testing.T) {
	stats := Compute(nil)

	if stats.Total != 0 || stats.ActiveCount != 0 || stats.InactiveCount != 0 || stats.TotalEmployees != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	for name, d := range map[string]decimal.Decimal{
		"total_budget":  stats.TotalBudget,
		"total_capital": stats.TotalCapital,
		"avg_budget":    stats.AvgBudget,
		"avg_capital":   stats.AvgCapital,
	} {
		if !d.IsZero() {
			t.Errorf("%s: expected 0, got %s", name, d)
		}
	}
	if stats.AvgEmployees != 0 {
		t.Errorf("expected avg_employees 0, got %v", stats.AvgEmployees)
	}
	for name, d := range map[string]domain.Distribution{
		"by_business_type": stats.ByBusinessType,
		"by_category":      stats.ByCategory,
		"by_status":        stats.ByStatus,
	} {
		if d == nil || len(d) != 0 {
			t.Errorf("%s: expected empty distribution, got %#v", name, d)
		}
	}
}

func TestCompute_Example(t *testing.T) {
	records := []*domain.Business{
		{Status: domain.StatusActive, BusinessType: "Kuliner", Budget: rupiah(1000000)},
		{Status: domain.StatusInactive, BusinessType: "Kuliner", Budget: rupiah(500000)},
		{Status: domain.StatusActive, BusinessType: "Fashion", Budget: rupiah(0)},
	}

	stats := Compute(records)

	if stats.Total != 3 || stats.ActiveCount != 2 || stats.InactiveCount != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if !stats.TotalBudget.Equal(rupiah(1500000)) {
		t.Errorf("expected total_budget 1500000, got %s", stats.TotalBudget)
	}
	if !stats.AvgBudget.Equal(rupiah(500000)) {
		t.Errorf("expected avg_budget 500000, got %s", stats.AvgBudget)
	}

	want := domain.Distribution{{Name: "Kuliner", Count: 2}, {Name: "Fashion", Count: 1}}
	if got := stats.ByBusinessType.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected business type distribution\nwant: %v\ngot:  %v", want, got)
	}
	if len(stats.ByCategory) != 0 {
		t.Errorf("records without category must not be bucketed, got %v", stats.ByCategory)
	}
}

func TestCompute_TemporarilyClosedCountsAsInactive(t *testing.T) {
	stats := Compute([]*domain.Business{
		{Status: domain.StatusActive},
		{Status: domain.StatusTemporarilyClosed},
		{Status: ""},
	})

	if stats.ActiveCount != 1 || stats.InactiveCount != 2 {
		t.Fatalf("expected 1 active / 2 inactive, got %d / %d", stats.ActiveCount, stats.InactiveCount)
	}
	if got := stats.ByStatus.Map(); !reflect.DeepEqual(got, map[string]int{"Aktif": 1, "Tutup Sementara": 1}) {
		t.Fatalf("empty status must be skipped, got %v", got)
	}
}

func TestCompute_Invariants(t *testing.T) {
	types := []string{"Kuliner", "", "Jasa", "Fashion"}
	statuses := []domain.BusinessStatus{domain.StatusActive, domain.StatusInactive, domain.StatusTemporarilyClosed}

	records := make([]*domain.Business, 0, 50)
	sum := decimal.Zero
	employees := 0
	for i := 0; i < 50; i++ {
		budget := decimal.NewFromInt(int64(i * 12345)).Add(decimal.RequireFromString("0.25"))
		sum = sum.Add(budget)
		employees += i % 7
		records = append(records, &domain.Business{
			BusinessType: types[i%len(types)],
			Category:     types[(i+1)%len(types)],
			Status:       statuses[i%len(statuses)],
			Budget:       budget,
			Employees:    i % 7,
		})

		stats := Compute(records)
		if stats.ActiveCount+stats.InactiveCount != stats.Total {
			t.Fatalf("n=%d: active+inactive != total (%d+%d != %d)", i+1, stats.ActiveCount, stats.InactiveCount, stats.Total)
		}
		if !stats.TotalBudget.Equal(sum) {
			t.Fatalf("n=%d: total_budget %s != %s", i+1, stats.TotalBudget, sum)
		}
		if want := sum.Div(decimal.NewFromInt(int64(i + 1))); !stats.AvgBudget.Equal(want) {
			t.Fatalf("n=%d: avg_budget %s != %s", i+1, stats.AvgBudget, want)
		}
		if stats.TotalEmployees != employees {
			t.Fatalf("n=%d: total_employees %d != %d", i+1, stats.TotalEmployees, employees)
		}
		if stats.ByBusinessType.Get("") != 0 || stats.ByCategory.Get("") != 0 {
			t.Fatalf("n=%d: empty key bucketed", i+1)
		}
	}
}

func TestDistribution_SortedIsStable(t *testing.T) {
	d := domain.Distribution{
		{Name: "Jasa", Count: 1},
		{Name: "Kuliner", Count: 3},
		{Name: "Fashion", Count: 1},
		{Name: "Kerajinan", Count: 3},
	}

	want := domain.Distribution{
		{Name: "Kuliner", Count: 3},
		{Name: "Kerajinan", Count: 3},
		{Name: "Jasa", Count: 1},
		{Name: "Fashion", Count: 1},
	}
	if got := d.Sorted(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected order\nwant: %v\ngot:  %v", want, got)
	}
	if d[0].Name != "Jasa" {
		t.Fatal("Sorted must not reorder the receiver")
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		count, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{3, 8, 38},
		{4, 4, 100},
	}
	for _, tc := range cases {
		if got := Percent(tc.count, tc.total); got != tc.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tc.count, tc.total, got, tc.want)
		}
	}
}
