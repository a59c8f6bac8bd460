package handler_test

import (
	"net/http"
	"testing"
	"time"

	"tiket_manager/database"
	"tiket_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTiket(t *testing.T) model.Tiket {
	t.Helper()

	tiket := model.Tiket{
		Kategori:     "konser",
		NamaAcara:    "Festival Jazz",
		Slug:         "festival-jazz",
		Lokasi:       "Surabaya",
		TanggalAcara: time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:       "Tersedia",
	}
	require.NoError(t, database.DB.Create(&tiket).Error)
	return tiket
}

func validPaketBody(idTiket uint) map[string]any {
	return map[string]any{
		"id_tiket":        idTiket,
		"nama_paket":      "VIP",
		"harga_paket":     500000,
		"gambar_venue":    "venue.jpg",
		"deskripsi_paket": "Dekat panggung",
	}
}

func TestCreatePaket(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)
	tiket := seedTiket(t)

	resp := doJSON(t, app, http.MethodPost, "/api/paket/", validPaketBody(tiket.IdTiket), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "Package created successfully", out["message"])

	var paket model.Paket
	require.NoError(t, database.DB.First(&paket).Error)
	assert.Equal(t, tiket.IdTiket, paket.IdTiket)
}

func TestCreatePaketDanglingTiket(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)

	resp := doJSON(t, app, http.MethodPost, "/api/paket/", validPaketBody(42), token)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "Error: Pastikan id_tiket valid dan ada di database.", out["message"])

	// tidak boleh ada row paket yang tertulis
	var count int64
	database.DB.Model(&model.Paket{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreatePaketMissingFields(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)
	tiket := seedTiket(t)

	body := validPaketBody(tiket.IdTiket)
	delete(body, "gambar_venue")

	resp := doJSON(t, app, http.MethodPost, "/api/paket/", body, token)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "All fields are required", out["message"])
}

func TestGetPaketByTiketId(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)
	tiket := seedTiket(t)

	resp := doJSON(t, app, http.MethodPost, "/api/paket/", validPaketBody(tiket.IdTiket), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/paket/tiket/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pakets := decodeList(t, resp)
	require.Len(t, pakets, 1)
	assert.Equal(t, "VIP", pakets[0]["nama_paket"])

	// tiket tanpa paket
	resp = doJSON(t, app, http.MethodGet, "/api/paket/tiket/99", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestGetPaketByIdNotFound(t *testing.T) {
	app := setupApp(t)
	token := userToken(t)

	resp := doJSON(t, app, http.MethodGet, "/api/paket/7", nil, token)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "Package not found", out["message"])
}

func TestEditPaket(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)
	tiket := seedTiket(t)

	resp := doJSON(t, app, http.MethodPost, "/api/paket/", validPaketBody(tiket.IdTiket), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	body := validPaketBody(tiket.IdTiket)
	body["nama_paket"] = "Reguler"
	resp = doJSON(t, app, http.MethodPut, "/api/paket/1", body, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var paket model.Paket
	require.NoError(t, database.DB.First(&paket, 1).Error)
	assert.Equal(t, "Reguler", paket.NamaPaket)
}

func TestDeletePaket(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)
	tiket := seedTiket(t)

	resp := doJSON(t, app, http.MethodPost, "/api/paket/", validPaketBody(tiket.IdTiket), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/paket/1", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var count int64
	database.DB.Model(&model.Paket{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
