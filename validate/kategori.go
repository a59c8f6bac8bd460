package validate

import (
	"tiket_manager/constants"
	"tiket_manager/model"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func KategoriBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.KategoriInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("kategoriInput", input)
		return c.Next()
	}
}
