package handler

import (
	"tiket_manager/constants"
	"tiket_manager/database"
	"tiket_manager/model"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetKategori(c *fiber.Ctx) error {
	var kategoris []model.Kategori
	if err := database.DB.Find(&kategoris).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(kategoris)
}

func GetKategoriById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var kategori model.Kategori
	if err := database.DB.First(&kategori, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.KATEGORI_NOT_FOUND, nil)
	}
	return c.Status(fiber.StatusOK).JSON(kategori)
}

func CreateKategori(c *fiber.Ctx) error {
	input := c.Locals("kategoriInput").(model.KategoriInput)

	kategori := model.Kategori{NamaKategori: input.NamaKategori}
	if err := database.DB.Create(&kategori).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Category created successfully",
		"data":    kategori,
	})
}

func EditKategori(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("kategoriInput").(model.KategoriInput)

	var kategori model.Kategori
	if err := database.DB.First(&kategori, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.KATEGORI_NOT_FOUND, nil)
	}

	kategori.NamaKategori = input.NamaKategori
	if err := database.DB.Save(&kategori).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"message": "Category updated successfully",
		"data":    kategori,
	})
}

func DeleteKategori(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var kategori model.Kategori
	if err := database.DB.First(&kategori, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.KATEGORI_NOT_FOUND, nil)
	}

	if err := database.DB.Delete(&kategori).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
