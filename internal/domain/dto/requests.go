package dto

import (
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/shopspring/decimal"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Region   string `json:"rw" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Identity  domain.Identity `json:"user"`
	AuthToken string          `json:"token"`
}

type CreateAdminRequest struct {
	Username  string `validate:"required,min=3,max=32,alphanum"`
	Password  string `validate:"required,min=6"`
	Name      string `validate:"required"`
	Region    string `validate:"required"`
	SubRegion string
}

type BusinessRequest struct {
	Name           string                `json:"nama_usaha" validate:"required"`
	OwnerName      string                `json:"pemilik" validate:"required"`
	BusinessType   string                `json:"jenis_usaha" validate:"required"`
	Category       string                `json:"kategori_usaha"`
	Status         domain.BusinessStatus `json:"status" validate:"required"`
	Budget         decimal.Decimal       `json:"rab"`
	InitialCapital decimal.Decimal       `json:"modal_awal"`
	Employees      int                   `json:"jumlah_karyawan" validate:"min=0"`
	Phone          string                `json:"no_hp" validate:"omitempty,numeric,max=15"`
	Address        string                `json:"alamat"`
	Description    string                `json:"deskripsi"`
}

func (r *BusinessRequest) Apply(b *domain.Business) {
	b.Name = r.Name
	b.OwnerName = r.OwnerName
	b.BusinessType = r.BusinessType
	b.Category = r.Category
	b.Status = r.Status
	b.Budget = r.Budget
	b.InitialCapital = r.InitialCapital
	b.Employees = r.Employees
	b.Phone = r.Phone
	b.Address = r.Address
	b.Description = r.Description
}

type BusinessQuery struct {
	Search string `query:"q"`
	Type   string `query:"jenis"`
	Status string `query:"status"`
}

type FinanceRequest struct {
	Date        string             `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Kind        domain.FinanceKind `json:"jenis" validate:"required,oneof=pemasukan pengeluaran"`
	Category    string             `json:"kategori" validate:"required"`
	Description string             `json:"keterangan" validate:"required"`
	Amount      decimal.Decimal    `json:"jumlah"`
}

type ListQuery struct {
	Search string `query:"q"`
	Type   string `query:"jenis"`
}

type LetterRequest struct {
	Type          string `json:"jenis" validate:"required"`
	RecipientName string `json:"nama" validate:"required"`
	RecipientNIK  string `json:"nik" validate:"omitempty,numeric,len=16"`
	Address       string `json:"alamat"`
	Purpose       string `json:"keperluan" validate:"required"`
	Notes         string `json:"keterangan"`
}

type ResidentRequest struct {
	Name             string `json:"nama" validate:"required"`
	NIK              string `json:"nik" validate:"required,numeric,len=16"`
	FamilyCardNumber string `json:"noKK" validate:"required,numeric,len=16"`
	Address          string `json:"alamat"`
	BirthPlace       string `json:"tempatLahir"`
	BirthDate        string `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"jenisKelamin"`
	Occupation       string `json:"pekerjaan"`
	MaritalStatus    string `json:"status"`
	Religion         string `json:"agama"`
	Education        string `json:"pendidikan"`
}

type MigrationStatus struct {
	Pending   int  `json:"pending"`
	Available bool `json:"available"`
}

type ImportRequest struct {
	URL string `json:"url" validate:"required,http_url"`
}
