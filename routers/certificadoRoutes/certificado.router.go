package certificadoRoutes

import (
	certificadoControllers "docutrack/controllers/certificado"
	"docutrack/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificadoRoutes(app *fiber.App, ctrl *certificadoControllers.Controller) {
	grupo := app.Group("/api/certificados", middleware.JWTMiddleware)

	grupo.Get("/", ctrl.ListCertificados)
	grupo.Get("/:id/descargar", ctrl.DownloadCertificado)
	grupo.Post("/:id/exportar", ctrl.ExportCertificado)
}
