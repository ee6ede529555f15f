package authRoutes

import (
	authControllers "docutrack/controllers/auth"
	authValidators "docutrack/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authControllers.Controller) {
	api := app.Group("/api")

	api.Post("/register", authValidators.Register(), ctrl.Register)
	api.Post("/login", authValidators.Login(), ctrl.Login)
	api.Get("/password-match", ctrl.PasswordMatch)
}
