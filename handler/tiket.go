package handler

import (
	"context"
	"encoding/json"
	"time"

	"tiket_manager/config"
	"tiket_manager/constants"
	"tiket_manager/database"
	"tiket_manager/model"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

const tiketCacheKey = "tiket:all"

// cache daftar tiket publik, best-effort: kalau redis mati, langsung ke DB
func cachedTiketList() ([]byte, bool) {
	if database.Redis == nil {
		return nil, false
	}
	val, err := database.Redis.Get(context.Background(), tiketCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func storeTiketListCache(tikets []model.Tiket) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(tikets)
	if err != nil {
		return
	}
	database.Redis.Set(context.Background(), tiketCacheKey, payload, time.Minute)
}

func InvalidateTiketCache() {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(context.Background(), tiketCacheKey)
}

// GetAllTiketPublic: endpoint publik untuk landing page
func GetAllTiketPublic(c *fiber.Ctx) error {
	if cached, ok := cachedTiketList(); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(cached)
	}

	var tikets []model.Tiket
	if err := database.DB.Find(&tikets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	storeTiketListCache(tikets)
	return c.Status(fiber.StatusOK).JSON(tikets)
}

// GetTiket: listing untuk dashboard admin, mendukung ?limit= & ?page=
func GetTiket(c *fiber.Ctx) error {
	filter := new(model.Pagination)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Tiket{})

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var tikets []model.Tiket
	if err := db.Find(&tikets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       tikets,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetTiketById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var tiket model.Tiket
	if err := database.DB.First(&tiket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TIKET_NOT_FOUND, nil)
	}
	return c.Status(fiber.StatusOK).JSON(tiket)
}

func CreateTiket(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.Tiket)
	input.Slug = slug.Make(input.NamaAcara)

	if err := database.DB.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateTiketCache()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Ticket created successfully",
		"data":    input,
	})
}

func EditTiket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("updateInput").(model.Tiket)

	var tiket model.Tiket
	if err := database.DB.First(&tiket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TIKET_NOT_FOUND, nil)
	}

	tiket.Kategori = input.Kategori
	tiket.NamaAcara = input.NamaAcara
	tiket.Slug = slug.Make(input.NamaAcara)
	tiket.Lokasi = input.Lokasi
	tiket.TanggalAcara = input.TanggalAcara
	tiket.Deskripsi = input.Deskripsi
	tiket.Poster = input.Poster
	if input.Status != "" {
		tiket.Status = input.Status
	}

	if err := database.DB.Save(&tiket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateTiketCache()
	return c.JSON(fiber.Map{
		"message": "Ticket updated successfully",
		"data":    tiket,
	})
}

func DeleteTiket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var tiket model.Tiket
	if err := database.DB.First(&tiket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TIKET_NOT_FOUND, nil)
	}

	if err := database.DB.Delete(&tiket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	InvalidateTiketCache()
	return c.JSON(fiber.Map{"message": "Ticket deleted successfully"})
}

// GetTiketQR mengembalikan PNG QR berisi link detail tiket
func GetTiketQR(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var tiket model.Tiket
	if err := database.DB.First(&tiket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TIKET_NOT_FOUND, nil)
	}

	baseURL := config.Config("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	content := baseURL + "/api/tiket/" + c.Params("id_tiket")

	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
