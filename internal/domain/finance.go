package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FinanceKind string

const (
	FinanceIncome  FinanceKind = "pemasukan"
	FinanceExpense FinanceKind = "pengeluaran"
)

func (k FinanceKind) Valid() bool {
	return k == FinanceIncome || k == FinanceExpense
}

// FinanceEntry keeps Amount positive; the sign comes from Kind.
type FinanceEntry struct {
	ID          string          `db:"id" json:"id"`
	Date        string          `db:"tanggal" json:"tanggal"`
	Kind        FinanceKind     `db:"jenis" json:"jenis"`
	Category    string          `db:"kategori" json:"kategori"`
	Description string          `db:"keterangan" json:"keterangan"`
	Amount      decimal.Decimal `db:"jumlah" json:"jumlah"`
	Region      string          `db:"rw" json:"rw,omitempty"`
	CreatedBy   string          `db:"created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

func (f *FinanceEntry) GetID() string   { return f.ID }
func (f *FinanceEntry) SetID(id string) { f.ID = id }

// Signed returns the amount with the sign implied by the entry kind.
func (f *FinanceEntry) Signed() decimal.Decimal {
	if f.Kind == FinanceExpense {
		return f.Amount.Neg()
	}
	return f.Amount
}

type FinanceSummary struct {
	TotalIncome  decimal.Decimal `json:"total_pemasukan"`
	TotalExpense decimal.Decimal `json:"total_pengeluaran"`
	Balance      decimal.Decimal `json:"saldo"`
	Count        int             `json:"jumlah_transaksi"`
}
