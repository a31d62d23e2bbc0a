package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as plain JSON numbers, the way the forms produce them.
	decimal.MarshalJSONWithoutQuotes = true
}

type BusinessStatus string

const (
	StatusActive            BusinessStatus = "Aktif"
	StatusInactive          BusinessStatus = "Tidak Aktif"
	StatusTemporarilyClosed BusinessStatus = "Tutup Sementara"
)

func (s BusinessStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusTemporarilyClosed:
		return true
	}
	return false
}

// Business is a UMKM record. JSON names follow the records the web forms
// have always written, so locally cached data decodes as is.
type Business struct {
	ID             string          `db:"id" json:"id,omitempty"`
	OwnerID        *string         `db:"user_id" json:"user_id,omitempty"`
	Region         string          `db:"rw" json:"rw,omitempty"`
	Name           string          `db:"nama_usaha" json:"nama_usaha"`
	OwnerName      string          `db:"pemilik" json:"pemilik"`
	BusinessType   string          `db:"jenis_usaha" json:"jenis_usaha"`
	Category       string          `db:"kategori_usaha" json:"kategori_usaha"`
	Status         BusinessStatus  `db:"status" json:"status"`
	Budget         decimal.Decimal `db:"rab" json:"rab"`
	InitialCapital decimal.Decimal `db:"modal_awal" json:"modal_awal"`
	Employees      int             `db:"jumlah_karyawan" json:"jumlah_karyawan"`
	Phone          string          `db:"no_hp" json:"no_hp,omitempty"`
	Address        string          `db:"alamat" json:"alamat,omitempty"`
	Description    string          `db:"deskripsi" json:"deskripsi,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

func (b *Business) GetID() string   { return b.ID }
func (b *Business) SetID(id string) { b.ID = id }

func (b *Business) Owner() string {
	if b.OwnerID == nil {
		return ""
	}
	return *b.OwnerID
}
