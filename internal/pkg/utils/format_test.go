package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.Zero, "0"},
		{decimal.NewFromInt(999), "999"},
		{decimal.NewFromInt(1000), "1.000"},
		{decimal.NewFromInt(1500000), "1.500.000"},
		{decimal.NewFromInt(-25000), "-25.000"},
		{decimal.RequireFromString("2500.5"), "2.500,5"},
		{decimal.RequireFromString("1.23456"), "1,235"},
	}

	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Errorf("FormatRupiah(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDateID(t *testing.T) {
	d := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	if got := FormatDateID(d); got != "5/3/2024" {
		t.Fatalf("expected 5/3/2024, got %s", got)
	}
}
