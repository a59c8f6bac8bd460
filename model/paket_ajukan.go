package model

import "time"

type PaketAjukan struct {
	IdPaketDiajukan uint      `gorm:"column:id_paket_diajukan;primaryKey" json:"id_paket_diajukan"`
	Nik             string    `gorm:"column:nik;not null;index" json:"nik"`
	IdTiketAjukan   *uint     `gorm:"column:id_tiket_ajukan" json:"id_tiket_ajukan"`
	NamaPaket       string    `gorm:"column:nama_paket;not null" json:"nama_paket"`
	HargaPaket      float64   `gorm:"column:harga_paket;not null" json:"harga_paket"`
	GambarVenue     string    `gorm:"column:gambar_venue" json:"gambar_venue"`
	DeskripsiPaket  string    `gorm:"column:deskripsi_paket" json:"deskripsi_paket"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (PaketAjukan) TableName() string {
	return "paket_diajukan"
}

type CreatePaketAjukanInput struct {
	Nik            string  `json:"nik" validate:"required"`
	IdTiketAjukan  *uint   `json:"id_tiket_ajukan" validate:"omitempty"`
	NamaPaket      string  `json:"nama_paket" validate:"required"`
	HargaPaket     float64 `json:"harga_paket" validate:"required"`
	GambarVenue    string  `json:"gambar_venue" validate:"required"`
	DeskripsiPaket string  `json:"deskripsi_paket" validate:"required"`
}

type UpdatePaketAjukanInput struct {
	NamaPaket      string  `json:"nama_paket" validate:"required"`
	HargaPaket     float64 `json:"harga_paket" validate:"required"`
	GambarVenue    string  `json:"gambar_venue" validate:"required"`
	DeskripsiPaket string  `json:"deskripsi_paket" validate:"required"`
}
