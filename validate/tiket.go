package validate

import (
	"errors"
	"strconv"
	"strings"

	"tiket_manager/constants"
	"tiket_manager/model"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func kategoriMessage() string {
	return "Kategori harus salah satu dari: " + strings.Join(constants.AllowedCategories, ", ")
}

func CreateTiket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTiketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if !constants.IsAllowedKategori(input.Kategori) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, kategoriMessage(), errors.New("kategori invalid"))
		}

		tanggal, err := parseTanggal(input.TanggalAcara)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "tanggal_acara harus berformat YYYY-MM-DD", err)
		}

		status := input.Status
		if status == "" {
			status = constants.TIKET_TERSEDIA
		}

		c.Locals("createInput", model.Tiket{
			Kategori:     input.Kategori,
			NamaAcara:    input.NamaAcara,
			Lokasi:       input.Lokasi,
			TanggalAcara: tanggal,
			Deskripsi:    input.Deskripsi,
			Poster:       input.Poster,
			Status:       status,
		})

		return c.Next()
	}
}

// EditTiket: PUT mengirim ulang semua field, sama seperti create
func EditTiket(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.CreateTiketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if !constants.IsAllowedKategori(input.Kategori) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, kategoriMessage(), errors.New("kategori invalid"))
		}

		tanggal, err := parseTanggal(input.TanggalAcara)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "tanggal_acara harus berformat YYYY-MM-DD", err)
		}

		c.Locals("inputId", uint(valueKey))
		c.Locals("updateInput", model.Tiket{
			Kategori:     input.Kategori,
			NamaAcara:    input.NamaAcara,
			Lokasi:       input.Lokasi,
			TanggalAcara: tanggal,
			Deskripsi:    input.Deskripsi,
			Poster:       input.Poster,
			Status:       input.Status,
		})

		return c.Next()
	}
}
