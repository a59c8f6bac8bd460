package handler

import (
	"errors"

	"tiket_manager/constants"
	"tiket_manager/database"
	"tiket_manager/model"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetPaket(c *fiber.Ctx) error {
	var pakets []model.Paket
	if err := database.DB.Find(&pakets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(pakets)
}

func GetPaketById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var paket model.Paket
	if err := database.DB.First(&paket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAKET_NOT_FOUND, nil)
	}
	return c.Status(fiber.StatusOK).JSON(paket)
}

func GetPaketByTiketId(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var pakets []model.Paket
	if err := database.DB.Where("id_tiket = ?", id).Find(&pakets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(pakets) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAKET_NOT_FOUND, nil)
	}
	return c.Status(fiber.StatusOK).JSON(pakets)
}

// CreatePaket menolak id_tiket yang tidak ada sebelum insert, supaya pelanggaran
// foreign key tampil sebagai 400 dan bukan error database mentah
func CreatePaket(c *fiber.Ctx) error {
	input := c.Locals("paketInput").(model.PaketInput)

	var tiket model.Tiket
	if err := database.DB.First(&tiket, input.IdTiket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Error: Pastikan id_tiket valid dan ada di database.", errors.New("id_tiket not found"))
	}

	paket := model.Paket{
		IdTiket:        input.IdTiket,
		NamaPaket:      input.NamaPaket,
		HargaPaket:     input.HargaPaket,
		GambarVenue:    input.GambarVenue,
		DeskripsiPaket: input.DeskripsiPaket,
	}
	if err := database.DB.Create(&paket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Package created successfully",
		"data":    paket,
	})
}

func EditPaket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("paketInput").(model.PaketInput)

	var paket model.Paket
	if err := database.DB.First(&paket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAKET_NOT_FOUND, nil)
	}

	var tiket model.Tiket
	if err := database.DB.First(&tiket, input.IdTiket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Error: Pastikan id_tiket valid dan ada di database.", errors.New("id_tiket not found"))
	}

	paket.IdTiket = input.IdTiket
	paket.NamaPaket = input.NamaPaket
	paket.HargaPaket = input.HargaPaket
	paket.GambarVenue = input.GambarVenue
	paket.DeskripsiPaket = input.DeskripsiPaket

	if err := database.DB.Save(&paket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"message": "Package updated successfully",
		"data":    paket,
	})
}

func DeletePaket(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var paket model.Paket
	if err := database.DB.First(&paket, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAKET_NOT_FOUND, nil)
	}

	if err := database.DB.Delete(&paket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{"message": "Package deleted successfully"})
}
