package database

import (
	"log"

	"tiket_manager/config"
	"tiket_manager/constants"
	"tiket_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData membuat akun admin pertama dan isi tabel kategori kalau masih kosong
func SeedData(db *gorm.DB) {
	var adminCount int64
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_ADMIN).Count(&adminCount)
	if adminCount == 0 {
		password := config.Config("SEED_ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
		if err != nil {
			log.Printf("seed admin: hash password failed: %v", err)
			return
		}
		admin := model.User{
			NoTelp:       "0000000000",
			NamaUser:     "Administrator",
			EmailUser:    "admin@tiketku.local",
			PasswordUser: string(hashed),
			Role:         constants.ROLE_ADMIN,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("seed admin: %v", err)
		} else {
			log.Println("seed admin account created (no_telp 0000000000)")
		}
	}

	var kategoriCount int64
	db.Model(&model.Kategori{}).Count(&kategoriCount)
	if kategoriCount == 0 {
		for _, nama := range constants.AllowedCategories {
			if err := db.Create(&model.Kategori{NamaKategori: nama}).Error; err != nil {
				log.Printf("seed kategori %s: %v", nama, err)
			}
		}
	}
}
