package helper

import (
	"os"
	"testing"
	"time"

	"tiket_manager/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.True(t, CheckPasswordHash("rahasia123", hash))
	assert.False(t, CheckPasswordHash("salah", hash))
}

func TestGenerateAndParseToken(t *testing.T) {
	user := model.User{
		NoTelp:    "0812345678",
		NamaUser:  "Budi",
		EmailUser: "budi@example.com",
		Role:      "user",
	}

	tokenString, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "0812345678", claims["no_telp"])
	assert.Equal(t, "Budi", claims["nama_user"])
	assert.Equal(t, "budi@example.com", claims["email_user"])
	assert.Equal(t, "user", claims["role"])

	// exp kurang lebih 1 jam ke depan
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), int64(exp), 5)
}

func TestParseExpiredToken(t *testing.T) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["no_telp"] = "0812345678"
	claims["role"] = "user"
	claims["exp"] = time.Now().Add(-time.Minute).Unix()

	tokenString, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	parsed, err := ParseToken(tokenString)
	require.Error(t, err)
	if parsed != nil {
		assert.False(t, parsed.Valid)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["no_telp"] = "0812345678"
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	tokenString, err := token.SignedString([]byte("secret-lain"))
	require.NoError(t, err)

	parsed, err := ParseToken(tokenString)
	require.Error(t, err)
	if parsed != nil {
		assert.False(t, parsed.Valid)
	}
}
