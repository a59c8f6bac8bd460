package helper

import (
	"errors"
	"fmt"
	"time"

	"tiket_manager/config"
	"tiket_manager/database"
	"tiket_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByNoTelp(noTelp string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{NoTelp: noTelp}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GenerateToken menerbitkan JWT berisi identitas user, berlaku 1 jam
func GenerateToken(user model.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["no_telp"] = user.NoTelp
	claims["nama_user"] = user.NamaUser
	claims["email_user"] = user.EmailUser
	claims["role"] = user.Role
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// GetClaimsFromToken membaca TokenClaim dari c.Locals("user") yang diisi middleware.Protected
func GetClaimsFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	u := c.Locals("user")
	if u == nil {
		return model.TokenClaim{}, false
	}
	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}

	tokenClaim := model.TokenClaim{}
	tokenClaim.NoTelp, _ = claims["no_telp"].(string)
	tokenClaim.NamaUser, _ = claims["nama_user"].(string)
	tokenClaim.EmailUser, _ = claims["email_user"].(string)
	tokenClaim.Role, _ = claims["role"].(string)

	return tokenClaim, tokenClaim.NoTelp != ""
}
