package handler_test

import (
	"net/http"
	"testing"

	"tiket_manager/database"
	"tiket_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := setupApp(t)

	body := map[string]any{
		"no_telp":       "0812345678",
		"nama_user":     "Budi",
		"email_user":    "budi@example.com",
		"password_user": "rahasia123",
		"role":          "user",
	}

	resp := doJSON(t, app, http.MethodPost, "/api/users/register", body, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "User registered successfully", out["message"])
	user := out["user"].(map[string]any)
	assert.Equal(t, "0812345678", user["no_telp"])
	assert.Equal(t, "user", user["role"])

	// password tidak boleh tersimpan plaintext
	var stored model.User
	require.NoError(t, database.DB.Where("no_telp = ?", "0812345678").First(&stored).Error)
	assert.NotEqual(t, "rahasia123", stored.PasswordUser)
	assert.NotEmpty(t, stored.PasswordUser)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	app := setupApp(t)
	createUser(t, "0812345678", "rahasia123", "user")

	body := map[string]any{
		"no_telp":       "0812345678",
		"nama_user":     "Budi",
		"email_user":    "budi@example.com",
		"password_user": "rahasia123",
	}

	resp := doJSON(t, app, http.MethodPost, "/api/users/register", body, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "Phone number already registered", out["message"])
}

func TestRegisterMissingFields(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/users/register", map[string]any{
		"no_telp": "0812345678",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	database.DB.Model(&model.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestLogin(t *testing.T) {
	app := setupApp(t)
	createUser(t, "0899999999", "benar123", "user")

	resp := doJSON(t, app, http.MethodPost, "/api/users/login", map[string]any{
		"no_telp":       "0899999999",
		"password_user": "benar123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// cookie token ikut terpasang
	var hasTokenCookie bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			hasTokenCookie = true
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, hasTokenCookie)

	out := decodeBody(t, resp)
	assert.Equal(t, "Login successful", out["message"])
	assert.Equal(t, "user", out["role"])
	assert.NotEmpty(t, out["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	createUser(t, "000", "benar123", "user")

	resp := doJSON(t, app, http.MethodPost, "/api/users/login", map[string]any{
		"no_telp":       "000",
		"password_user": "wrongpass",
	}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "Invalid password", out["message"])
	assert.Nil(t, out["token"])
}

func TestLoginUnknownUser(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/users/login", map[string]any{
		"no_telp":       "0800000001",
		"password_user": "apapun",
	}, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "User not found", out["message"])
}

func TestLoginMissingInput(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/users/login", map[string]any{
		"no_telp": "0800000001",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProfile(t *testing.T) {
	app := setupApp(t)
	createUser(t, "0877777777", "rahasia123", "user")

	resp := doJSON(t, app, http.MethodGet, "/api/users/profile/0877777777", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "0877777777", out["no_telp"])

	resp = doJSON(t, app, http.MethodGet, "/api/users/profile/0800404404", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	out = decodeBody(t, resp)
	assert.Equal(t, "User not found", out["message"])
}

func TestGetUsersRequiresAdmin(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/users/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/users/", nil, userToken(t))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/users/", nil, adminToken(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	users := decodeList(t, resp)
	assert.Len(t, users, 2)
}
