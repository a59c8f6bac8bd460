package model

import "time"

type TiketAjukan struct {
	IdTiketAjukan   uint      `gorm:"column:id_tiket_ajukan;primaryKey" json:"id_tiket_ajukan"`
	Nik             string    `gorm:"column:nik;not null;index" json:"nik"`
	NoTelp          string    `gorm:"column:no_telp;not null;index" json:"no_telp"`
	Kategori        string    `gorm:"column:kategori;not null" json:"kategori"`
	NamaAcara       string    `gorm:"column:nama_acara;not null" json:"nama_acara"`
	Lokasi          string    `gorm:"column:lokasi;not null" json:"lokasi"`
	TanggalAcara    time.Time `gorm:"column:tanggal_acara;not null" json:"tanggal_acara"`
	Poster          string    `gorm:"column:poster" json:"poster"`
	Deskripsi       string    `gorm:"column:deskripsi" json:"deskripsi"`
	StatusPengajuan string    `gorm:"column:status_pengajuan;not null;default:'Pending'" json:"status_pengajuan"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (TiketAjukan) TableName() string {
	return "tiket_diajukan"
}

type CreateTiketAjukanInput struct {
	Nik             string `json:"nik" validate:"required"`
	NoTelp          string `json:"no_telp" validate:"required"`
	Kategori        string `json:"kategori" validate:"required"`
	NamaAcara       string `json:"nama_acara" validate:"required"`
	Lokasi          string `json:"lokasi" validate:"required"`
	TanggalAcara    string `json:"tanggal_acara" validate:"required"`
	Poster          string `json:"poster" validate:"omitempty"`
	Deskripsi       string `json:"deskripsi" validate:"omitempty"`
	StatusPengajuan string `json:"status_pengajuan" validate:"omitempty,oneof=Pending Disetujui Ditolak"`
}

type UpdateStatusPengajuanInput struct {
	StatusPengajuan string `json:"status_pengajuan" validate:"required"`
}
