package model

import "time"

type Tiket struct {
	IdTiket      uint      `gorm:"column:id_tiket;primaryKey" json:"id_tiket"`
	Kategori     string    `gorm:"column:kategori;not null" json:"kategori"`
	NamaAcara    string    `gorm:"column:nama_acara;not null" json:"nama_acara"`
	Slug         string    `gorm:"column:slug;index" json:"slug"`
	Lokasi       string    `gorm:"column:lokasi;not null" json:"lokasi"`
	TanggalAcara time.Time `gorm:"column:tanggal_acara;not null" json:"tanggal_acara"`
	Deskripsi    string    `gorm:"column:deskripsi" json:"deskripsi"`
	Poster       string    `gorm:"column:poster" json:"poster"`
	Status       string    `gorm:"column:status;not null;default:'Tersedia'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Pakets []Paket `gorm:"foreignKey:IdTiket" json:"-"`
}

func (Tiket) TableName() string {
	return "tiket"
}

type CreateTiketInput struct {
	Kategori     string `json:"kategori" validate:"required"`
	NamaAcara    string `json:"nama_acara" validate:"required"`
	Lokasi       string `json:"lokasi" validate:"required"`
	TanggalAcara string `json:"tanggal_acara" validate:"required"`
	Deskripsi    string `json:"deskripsi" validate:"omitempty"`
	Poster       string `json:"poster" validate:"omitempty"`
	Status       string `json:"status" validate:"omitempty,oneof=Tersedia Selesai Habis"`
}
