package model

type Kategori struct {
	IdKategori   uint   `gorm:"column:id_kategori;primaryKey" json:"id_kategori"`
	NamaKategori string `gorm:"column:nama_kategori;not null" validate:"required" json:"nama_kategori"`
}

func (Kategori) TableName() string {
	return "kategori"
}

type KategoriInput struct {
	NamaKategori string `json:"nama_kategori" validate:"required"`
}
