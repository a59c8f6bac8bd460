package handler

import (
	"errors"
	"time"

	"tiket_manager/constants"
	"tiket_manager/database"
	"tiket_manager/helper"
	"tiket_manager/model"
	"tiket_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Strict",
		Secure:   false, // true saat deploy HTTPS
		Path:     "/",
		Expires:  time.Now().Add(time.Hour),
	})
}

func Register(c *fiber.Ctx) error {
	input := c.Locals("registerInput").(model.RegisterInput)

	existing, err := helper.GetUserByNoTelp(input.NoTelp)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PHONE_ALREADY_REGISTERED, errors.New("no_telp already exists"))
	}

	hashed, err := helper.HashPassword(input.PasswordUser)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user := model.User{
		NoTelp:       input.NoTelp,
		NamaUser:     input.NamaUser,
		EmailUser:    input.EmailUser,
		PasswordUser: hashed,
		Role:         input.Role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.GenerateToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setTokenCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user": fiber.Map{
			"no_telp":    user.NoTelp,
			"nama_user":  user.NamaUser,
			"email_user": user.EmailUser,
			"role":       user.Role,
		},
	})
}

func Login(c *fiber.Ctx) error {
	var input model.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if input.NoTelp == "" || input.PasswordUser == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("no_telp and password_user are required"))
	}

	user, err := helper.GetUserByNoTelp(input.NoTelp)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, errors.New("no_telp not registered"))
	}

	if !helper.CheckPasswordHash(input.PasswordUser, user.PasswordUser) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match"))
	}

	token, err := helper.GenerateToken(*user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setTokenCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"role":    user.Role,
		"token":   token,
		"user": fiber.Map{
			"no_telp":    user.NoTelp,
			"nama_user":  user.NamaUser,
			"email_user": user.EmailUser,
		},
	})
}

func GetUsers(c *fiber.Ctx) error {
	var users []model.User
	if err := database.DB.Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

func GetProfile(c *fiber.Ctx) error {
	noTelp := c.Params("no_telp")

	user, err := helper.GetUserByNoTelp(noTelp)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func DeleteUser(c *fiber.Ctx) error {
	noTelp := c.Params("no_telp")

	user, err := helper.GetUserByNoTelp(noTelp)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
	}

	if err := database.DB.Delete(user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
