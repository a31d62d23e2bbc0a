package domain

import "time"

type Resident struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"nama" json:"nama"`
	NIK              string    `db:"nik" json:"nik"`
	FamilyCardNumber string    `db:"no_kk" json:"noKK"`
	Address          string    `db:"alamat" json:"alamat"`
	BirthPlace       string    `db:"tempat_lahir" json:"tempatLahir"`
	BirthDate        string    `db:"tanggal_lahir" json:"tanggalLahir"`
	Gender           string    `db:"jenis_kelamin" json:"jenisKelamin"`
	Occupation       string    `db:"pekerjaan" json:"pekerjaan"`
	MaritalStatus    string    `db:"status" json:"status"`
	Religion         string    `db:"agama" json:"agama"`
	Education        string    `db:"pendidikan" json:"pendidikan"`
	Region           string    `db:"rw" json:"rw,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

func (r *Resident) GetID() string   { return r.ID }
func (r *Resident) SetID(id string) { r.ID = id }
