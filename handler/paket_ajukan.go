package handler

import (
	"errors"

	"tiket_manager/constants"
	"tiket_manager/database"
	"tiket_manager/model"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetPaketAjukan(c *fiber.Ctx) error {
	var pakets []model.PaketAjukan
	if err := database.DB.Find(&pakets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(pakets)
}

func GetPaketAjukanByNik(c *fiber.Ctx) error {
	nik := c.Params("nik")

	var pakets []model.PaketAjukan
	if err := database.DB.Where("nik = ?", nik).Find(&pakets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(pakets) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAKET_AJUKAN_NOT_FOUND, nil)
	}
	return c.Status(fiber.StatusOK).JSON(pakets)
}

func CreatePaketAjukan(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreatePaketAjukanInput)

	// id_tiket_ajukan opsional, tapi kalau dikirim harus menunjuk pengajuan yang ada
	if input.IdTiketAjukan != nil {
		var ajuan model.TiketAjukan
		if err := database.DB.First(&ajuan, *input.IdTiketAjukan).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Error: Pastikan nik atau id_tiket_ajukan valid dan ada di database.", errors.New("id_tiket_ajukan not found"))
		}
	}

	paket := model.PaketAjukan{
		Nik:            input.Nik,
		IdTiketAjukan:  input.IdTiketAjukan,
		NamaPaket:      input.NamaPaket,
		HargaPaket:     input.HargaPaket,
		GambarVenue:    input.GambarVenue,
		DeskripsiPaket: input.DeskripsiPaket,
	}
	if err := database.DB.Create(&paket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Submitted package created successfully",
		"data":    paket,
	})
}

func EditPaketAjukan(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("updateInput").(model.UpdatePaketAjukanInput)

	var paket model.PaketAjukan
	if err := database.DB.First(&paket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAKET_AJUKAN_NOT_FOUND, nil)
	}

	paket.NamaPaket = input.NamaPaket
	paket.HargaPaket = input.HargaPaket
	paket.GambarVenue = input.GambarVenue
	paket.DeskripsiPaket = input.DeskripsiPaket

	if err := database.DB.Save(&paket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"message": "Submitted package updated successfully",
		"data":    paket,
	})
}

func DeletePaketAjukan(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var paket model.PaketAjukan
	if err := database.DB.First(&paket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAKET_AJUKAN_NOT_FOUND, nil)
	}

	if err := database.DB.Delete(&paket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{"message": "Submitted package deleted successfully"})
}
