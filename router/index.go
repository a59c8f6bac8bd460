package router

import (
	"tiket_manager/constants"
	"tiket_manager/handler"
	"tiket_manager/middleware"
	"tiket_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	users := api.Group("/users")
	users.Post("/register", validate.Register(), handler.Register)
	users.Post("/login", handler.Login)
	users.Get("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.GetUsers)
	users.Get("/profile/:no_telp", handler.GetProfile)
	users.Delete("/:no_telp", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.DeleteUser)

	tiket := api.Group("/tiket")
	tiket.Get("/all", handler.GetAllTiketPublic)
	tiket.Get("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.GetTiket)
	tiket.Get("/:id_tiket/qr", validate.GetById("id_tiket"), handler.GetTiketQR)
	tiket.Get("/:id_tiket", middleware.Protected(), validate.GetById("id_tiket"), handler.GetTiketById)
	tiket.Post("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.CreateTiket(), handler.CreateTiket)
	tiket.Put("/:id_tiket", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.EditTiket("id_tiket"), handler.EditTiket)
	tiket.Delete("/:id_tiket", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.GetById("id_tiket"), handler.DeleteTiket)

	paket := api.Group("/paket")
	paket.Get("/", middleware.Protected(), handler.GetPaket)
	paket.Get("/tiket/:id_tiket", validate.GetById("id_tiket"), handler.GetPaketByTiketId)
	paket.Get("/:id_paket", middleware.Protected(), validate.GetById("id_paket"), handler.GetPaketById)
	paket.Post("/", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.CreatePaket(), handler.CreatePaket)
	paket.Put("/:id_paket", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.EditPaket("id_paket"), handler.EditPaket)
	paket.Delete("/:id_paket", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), validate.GetById("id_paket"), handler.DeletePaket)

	kategori := api.Group("/kategori", middleware.Protected())
	kategori.Get("/", handler.GetKategori)
	kategori.Get("/:id_kategori", validate.GetById("id_kategori"), handler.GetKategoriById)
	kategori.Post("/", validate.KategoriBody(), handler.CreateKategori)
	kategori.Put("/:id_kategori", validate.GetById("id_kategori"), validate.KategoriBody(), handler.EditKategori)
	kategori.Delete("/:id_kategori", validate.GetById("id_kategori"), handler.DeleteKategori)

	tiketAjukan := api.Group("/tiketajukan")
	tiketAjukan.Get("/", handler.GetTiketAjukan)
	tiketAjukan.Get("/detail/:id_tiket_ajukan", middleware.Protected(), validate.GetById("id_tiket_ajukan"), handler.GetTiketAjukanById)
	tiketAjukan.Get("/status/:no_telp", handler.GetTiketAjukanByNoTelp)
	tiketAjukan.Get("/:no_telp", handler.GetTiketAjukanByNoTelp)
	tiketAjukan.Post("/", validate.CreateTiketAjukan(), handler.CreateTiketAjukan)
	tiketAjukan.Put("/:id_tiket_ajukan", middleware.Protected(), validate.UpdateStatusPengajuan("id_tiket_ajukan"), handler.UpdateStatusPengajuan)
	tiketAjukan.Delete("/:id_tiket_ajukan", middleware.Protected(), validate.GetById("id_tiket_ajukan"), handler.DeleteTiketAjukan)

	paketAjukan := api.Group("/paketajukan")
	paketAjukan.Get("/", middleware.Protected(), handler.GetPaketAjukan)
	paketAjukan.Get("/:nik", middleware.Protected(), handler.GetPaketAjukanByNik)
	paketAjukan.Post("/", validate.CreatePaketAjukan(), handler.CreatePaketAjukan)
	paketAjukan.Put("/:id_paket_diajukan", middleware.Protected(), validate.EditPaketAjukan("id_paket_diajukan"), handler.EditPaketAjukan)
	paketAjukan.Delete("/:id_paket_diajukan", middleware.Protected(), validate.GetById("id_paket_diajukan"), handler.DeletePaketAjukan)

	api.Post("/upload/signature", middleware.Protected(), middleware.RequireRole(constants.ROLE_ADMIN), handler.GenerateUploadSignature)

	// route tidak dikenal
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Route not found",
		})
	})
}
