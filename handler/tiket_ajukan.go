package handler

import (
	"errors"

	"tiket_manager/constants"
	"tiket_manager/database"
	"tiket_manager/helper"
	"tiket_manager/model"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTiketAjukan(c *fiber.Ctx) error {
	var ajuans []model.TiketAjukan
	if err := database.DB.Find(&ajuans).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(ajuans) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No tickets found", nil)
	}
	return c.Status(fiber.StatusOK).JSON(ajuans)
}

func GetTiketAjukanByNoTelp(c *fiber.Ctx) error {
	noTelp := c.Params("no_telp")

	var ajuans []model.TiketAjukan
	if err := database.DB.Where("no_telp = ?", noTelp).Find(&ajuans).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(ajuans) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No tickets found for this NIK", nil)
	}
	return c.Status(fiber.StatusOK).JSON(ajuans)
}

func GetTiketAjukanById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var ajuan model.TiketAjukan
	if err := database.DB.First(&ajuan, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TIKET_AJUKAN_NOT_FOUND, nil)
	}
	return c.Status(fiber.StatusOK).JSON(ajuan)
}

func CreateTiketAjukan(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.TiketAjukan)

	if err := database.DB.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Submitted ticket created successfully",
		"data":    input,
	})
}

// UpdateStatusPengajuan menjalankan workflow approval: lihat helper.UpdateStatusPengajuan
func UpdateStatusPengajuan(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	newStatus := c.Locals("statusPengajuan").(string)

	ajuan, changed, promoted, err := helper.UpdateStatusPengajuan(database.DB, id, newStatus)
	if err != nil {
		if errors.Is(err, helper.ErrTiketAjukanNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TIKET_AJUKAN_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if promoted {
		InvalidateTiketCache()
	}

	// notifikasi ke pengaju kalau akunnya terdaftar; retry dengan status yang
	// sama tidak mengirim ulang email
	if changed {
		if user, err := helper.GetUserByNoTelp(ajuan.Nik); err == nil && user != nil {
			helper.SendStatusPengajuanEmail(user.EmailUser, helper.StatusPengajuanMailData{
				NamaUser:  user.NamaUser,
				NamaAcara: ajuan.NamaAcara,
				Status:    newStatus,
			})
		}
	}

	return c.JSON(fiber.Map{
		"message":  "Status pengajuan berhasil diperbarui",
		"promoted": promoted,
		"data":     ajuan,
	})
}

func DeleteTiketAjukan(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var ajuan model.TiketAjukan
	if err := database.DB.First(&ajuan, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TIKET_AJUKAN_NOT_FOUND, nil)
	}

	if err := database.DB.Delete(&ajuan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{"message": "Submitted ticket deleted successfully"})
}
