package helper

import (
	"errors"
	"time"

	"tiket_manager/constants"
	"tiket_manager/model"

	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

var ErrTiketAjukanNotFound = errors.New("tiket ajukan not found")

// UpdateStatusPengajuan mengubah status pengajuan tiket dan, saat transisi ke
// Disetujui, menyalin pengajuan beserta seluruh paket_diajukan milik nik yang
// sama ke tabel tiket dan paket. Semua langkah berjalan dalam satu transaksi.
// Perubahan status memakai UPDATE bersyarat (status_pengajuan <> status baru):
// UPDATE mengunci barisnya, jadi dua approve bersamaan tidak bisa sama-sama
// mempromosikan — yang menunggu kunci mengevaluasi ulang kondisinya terhadap
// baris yang sudah di-commit, melihat status sudah Disetujui, dan berhenti.
// Mengembalikan apakah status berubah dan apakah promosi dijalankan.
func UpdateStatusPengajuan(db *gorm.DB, idTiketAjukan uint, newStatus string) (*model.TiketAjukan, bool, bool, error) {
	var ajuan model.TiketAjukan
	changed := false
	promoted := false

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ajuan, idTiketAjukan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTiketAjukanNotFound
			}
			return err
		}

		res := tx.Model(&model.TiketAjukan{}).
			Where("id_tiket_ajukan = ? AND status_pengajuan <> ?", ajuan.IdTiketAjukan, newStatus).
			Update("status_pengajuan", newStatus)
		if res.Error != nil {
			return res.Error
		}
		changed = res.RowsAffected > 0
		ajuan.StatusPengajuan = newStatus

		if newStatus != constants.STATUS_DISETUJUI || !changed {
			return nil
		}

		tiket, err := promoteTiket(tx, &ajuan)
		if err != nil {
			return err
		}
		if err := promotePaket(tx, &ajuan, tiket); err != nil {
			return err
		}
		promoted = true
		return nil
	})

	if err != nil {
		return nil, false, false, err
	}
	return &ajuan, changed, promoted, nil
}

func promoteTiket(tx *gorm.DB, ajuan *model.TiketAjukan) (*model.Tiket, error) {
	var tiket model.Tiket
	if err := copier.Copy(&tiket, ajuan); err != nil {
		return nil, err
	}

	// id dan timestamp tidak ikut dari pengajuan
	tiket.IdTiket = 0
	tiket.CreatedAt = time.Time{}
	tiket.UpdatedAt = time.Time{}
	tiket.Status = constants.TIKET_TERSEDIA
	tiket.Slug = slug.Make(tiket.NamaAcara)

	if err := tx.Create(&tiket).Error; err != nil {
		return nil, err
	}
	return &tiket, nil
}

// promotePaket menyalin semua paket_diajukan dengan nik yang sama ke tabel paket.
// TODO: pertimbangkan join lewat id_tiket_ajukan supaya paket pengajuan lain
// milik nik yang sama tidak ikut terbawa.
func promotePaket(tx *gorm.DB, ajuan *model.TiketAjukan, tiket *model.Tiket) error {
	var paketAjukans []model.PaketAjukan
	if err := tx.Where("nik = ?", ajuan.Nik).Find(&paketAjukans).Error; err != nil {
		return err
	}

	for _, pa := range paketAjukans {
		var paket model.Paket
		if err := copier.Copy(&paket, &pa); err != nil {
			return err
		}
		paket.IdPaket = 0
		paket.IdTiket = tiket.IdTiket
		paket.CreatedAt = time.Time{}
		paket.UpdatedAt = time.Time{}

		if err := tx.Create(&paket).Error; err != nil {
			return err
		}
	}
	return nil
}
