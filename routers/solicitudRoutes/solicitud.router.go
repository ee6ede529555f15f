package solicitudRoutes

import (
	solicitudControllers "docutrack/controllers/solicitud"
	"docutrack/middleware"
	solicitudValidators "docutrack/validators/solicitud"

	"github.com/gofiber/fiber/v2"
)

func SetupSolicitudRoutes(app *fiber.App, ctrl *solicitudControllers.Controller) {
	grupo := app.Group("/api/solicitudes", middleware.JWTMiddleware)

	grupo.Post("/", solicitudValidators.Create(), ctrl.CreateSolicitud)
	grupo.Get("/", ctrl.ListSolicitudes)

	// Demo control standing in for the registry back office. Deliberately not
	// behind the session guard; it is not a security boundary.
	app.Post("/api/admin/aprobar", ctrl.ApproveNext)
}
