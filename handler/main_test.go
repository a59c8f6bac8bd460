package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"tiket_manager/constants"
	"tiket_manager/database"
	"tiket_manager/helper"
	"tiket_manager/model"
	"tiket_manager/router"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupApp membuat app + database sqlite in-memory baru per test
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func createUser(t *testing.T, noTelp, password, role string) model.User {
	t.Helper()

	hashed, err := helper.HashPassword(password)
	require.NoError(t, err)

	user := model.User{
		NoTelp:       noTelp,
		NamaUser:     "User " + noTelp,
		EmailUser:    noTelp + "@example.com",
		PasswordUser: hashed,
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func adminToken(t *testing.T) string {
	t.Helper()

	user := createUser(t, "0811111111", "rahasia123", constants.ROLE_ADMIN)
	token, err := helper.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T) string {
	t.Helper()

	user := createUser(t, "0822222222", "rahasia123", constants.ROLE_USER)
	token, err := helper.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
