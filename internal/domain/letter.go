package domain

import "time"

const LetterStatusCompleted = "selesai"

type Letter struct {
	ID            string    `db:"id" json:"id"`
	Number        string    `db:"nomor" json:"nomor"`
	Type          string    `db:"jenis" json:"jenis"`
	RecipientName string    `db:"nama" json:"nama"`
	RecipientNIK  string    `db:"nik" json:"nik,omitempty"`
	Address       string    `db:"alamat" json:"alamat,omitempty"`
	Purpose       string    `db:"keperluan" json:"keperluan"`
	Notes         string    `db:"keterangan" json:"keterangan,omitempty"`
	IssuedAt      time.Time `db:"tanggal" json:"tanggal"`
	Status        string    `db:"status" json:"status"`
	Region        string    `db:"rw" json:"rw,omitempty"`
}

func (l *Letter) GetID() string   { return l.ID }
func (l *Letter) SetID(id string) { l.ID = id }
