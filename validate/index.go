package validate

import (
	"errors"
	"strconv"
	"time"

	"tiket_manager/constants"
	"tiket_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById memvalidasi path param numerik dan menyimpannya ke c.Locals("inputId")
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))

		return c.Next()
	}
}

func parseTanggal(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
