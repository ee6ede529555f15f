package solicitudController

import (
	"docutrack/middleware"
	"docutrack/models"
	"docutrack/store"
	"docutrack/utils"

	"github.com/gofiber/fiber/v2"
)

const motivoPorDefecto = "Primera vez"

// Controller owns the session's solicitud store.
type Controller struct {
	Store *store.Store
}

func New(st *store.Store) *Controller {
	return &Controller{Store: st}
}

// CreateSolicitud registers a new application. The payload has already passed
// the form validator.
func (ctrl *Controller) CreateSolicitud(c *fiber.Ctx) error {
	datos := new(models.DatosSolicitud)
	if err := c.BodyParser(datos); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if datos.MotivoSolicitud == "" {
		datos.MotivoSolicitud = motivoPorDefecto
	}

	sol := ctrl.Store.Create(*datos)

	return middleware.JsonResponse(c, fiber.StatusCreated, true,
		`Solicitud enviada correctamente. Puedes verificar el estado en la pestaña "Estado Solicitudes".`, sol)
}

// ListSolicitudes returns every solicitud of the session in submission order.
func (ctrl *Controller) ListSolicitudes(c *fiber.Ctx) error {
	solicitudes := ctrl.Store.List()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Solicitudes obtenidas correctamente!", fiber.Map{
		"solicitudes": solicitudes,
		"total":       len(solicitudes),
	})
}

// ApproveNext is the demo stand-in for the registry back office: it approves
// the oldest pending solicitud. There is no way to target a specific id from
// this endpoint; a real admin workflow would need one.
func (ctrl *Controller) ApproveNext(c *fiber.Ctx) error {
	sol, ok := ctrl.Store.ApproveFirstPending()
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No hay solicitudes en proceso para aprobar", nil)
	}

	// Best effort: the requester left an email on the form, let them know
	if sol.Datos.EmailSolicitante != "" {
		go utils.SendApprovalEmail(sol)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Solicitud aprobada por el administrador!", fiber.Map{
		"id":     sol.ID,
		"numero": sol.Numero,
	})
}
