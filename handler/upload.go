package handler

import (
	"fmt"
	"net/url"
	"time"

	"tiket_manager/config"
	"tiket_manager/constants"
	"tiket_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GenerateUploadSignature menandatangani parameter upload Cloudinary untuk
// poster acara dan gambar venue; upload dilakukan langsung dari client
func GenerateUploadSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	if params.Folder == "" {
		params.Folder = "tiket"
	}
	if params.PublicID == "" {
		params.PublicID = uuid.NewString()
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	signable := url.Values{}
	signable.Set("folder", params.Folder)
	signable.Set("public_id", params.PublicID)
	signable.Set("timestamp", timestamp)

	signature, err := api.SignParameters(signable, config.Config("CLOUDINARY_API_SECRET"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"signature":  signature,
		"timestamp":  timestamp,
		"api_key":    config.Config("CLOUDINARY_API_KEY"),
		"cloud_name": config.Config("CLOUDINARY_CLOUD_NAME"),
		"folder":     params.Folder,
		"public_id":  params.PublicID,
	})
}
