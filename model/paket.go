package model

import "time"

type Paket struct {
	IdPaket        uint      `gorm:"column:id_paket;primaryKey" json:"id_paket"`
	IdTiket        uint      `gorm:"column:id_tiket;not null;index" json:"id_tiket"`
	NamaPaket      string    `gorm:"column:nama_paket;not null" json:"nama_paket"`
	HargaPaket     float64   `gorm:"column:harga_paket;not null" json:"harga_paket"`
	GambarVenue    string    `gorm:"column:gambar_venue" json:"gambar_venue"`
	DeskripsiPaket string    `gorm:"column:deskripsi_paket" json:"deskripsi_paket"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Tiket Tiket `gorm:"foreignKey:IdTiket;references:IdTiket" json:"-"`
}

func (Paket) TableName() string {
	return "paket"
}

type PaketInput struct {
	IdTiket        uint    `json:"id_tiket" validate:"required"`
	NamaPaket      string  `json:"nama_paket" validate:"required"`
	HargaPaket     float64 `json:"harga_paket" validate:"required"`
	GambarVenue    string  `json:"gambar_venue" validate:"required"`
	DeskripsiPaket string  `json:"deskripsi_paket" validate:"required"`
}
