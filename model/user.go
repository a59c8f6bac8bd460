package model

import "time"

type User struct {
	IdUser       uint      `gorm:"column:id_user;primaryKey" json:"id_user"`
	NoTelp       string    `gorm:"column:no_telp;uniqueIndex;not null" validate:"required" json:"no_telp"`
	NamaUser     string    `gorm:"column:nama_user;not null" validate:"required" json:"nama_user"`
	EmailUser    string    `gorm:"column:email_user;not null" validate:"required,email" json:"email_user"`
	PasswordUser string    `gorm:"column:password_user;not null" json:"-"`
	Role         string    `gorm:"column:role;not null;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type RegisterInput struct {
	NoTelp       string `json:"no_telp" validate:"required"`
	NamaUser     string `json:"nama_user" validate:"required"`
	EmailUser    string `json:"email_user" validate:"required,email"`
	PasswordUser string `json:"password_user" validate:"required,min=6"`
	Role         string `json:"role" validate:"omitempty,oneof=admin user"`
}

type LoginInput struct {
	NoTelp       string `json:"no_telp"`
	PasswordUser string `json:"password_user"`
}
