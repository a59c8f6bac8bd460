package handler_test

import (
	"net/http"
	"testing"

	"tiket_manager/database"
	"tiket_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKategoriCRUD(t *testing.T) {
	app := setupApp(t)
	token := userToken(t)

	// semua route kategori butuh login
	resp := doJSON(t, app, http.MethodGet, "/api/kategori/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/kategori/", map[string]any{
		"nama_kategori": "konser",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/kategori/", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	kategoris := decodeList(t, resp)
	require.Len(t, kategoris, 1)
	assert.Equal(t, "konser", kategoris[0]["nama_kategori"])

	resp = doJSON(t, app, http.MethodPut, "/api/kategori/1", map[string]any{
		"nama_kategori": "seminar",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var kategori model.Kategori
	require.NoError(t, database.DB.First(&kategori, 1).Error)
	assert.Equal(t, "seminar", kategori.NamaKategori)

	resp = doJSON(t, app, http.MethodDelete, "/api/kategori/1", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/kategori/1", nil, token)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "Category not found", out["message"])
}
