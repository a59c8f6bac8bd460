package validate

import (
	"errors"
	"strconv"

	"tiket_manager/constants"
	"tiket_manager/model"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTiketAjukan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTiketAjukanInput
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

		// status default Pending kalau tidak dikirim
		status := input.StatusPengajuan
		if status == "" {
			status = constants.STATUS_PENDING
		}

		c.Locals("createInput", model.TiketAjukan{
			Nik:             input.Nik,
			NoTelp:          input.NoTelp,
			Kategori:        input.Kategori,
			NamaAcara:       input.NamaAcara,
			Lokasi:          input.Lokasi,
			TanggalAcara:    tanggal,
			Poster:          input.Poster,
			Deskripsi:       input.Deskripsi,
			StatusPengajuan: status,
		})

		return c.Next()
	}
}

// UpdateStatusPengajuan memvalidasi transisi status sebelum masuk ke workflow approval
func UpdateStatusPengajuan(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateStatusPengajuanInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if !constants.IsValidStatusPengajuan(input.StatusPengajuan) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS_PENGAJUAN, errors.New("status invalid"))
		}

		c.Locals("inputId", uint(valueKey))
		c.Locals("statusPengajuan", input.StatusPengajuan)
		return c.Next()
	}
}
