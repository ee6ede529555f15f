package certificadoController

import (
	"fmt"
	"log"
	"strconv"

	"docutrack/documento"
	"docutrack/middleware"
	"docutrack/models"
	"docutrack/store"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the download screen: the derived certificates of the
// session's approved solicitudes.
type Controller struct {
	Store *store.Store
}

func New(st *store.Store) *Controller {
	return &Controller{Store: st}
}

// ListCertificados returns the certificates currently available for download.
func (ctrl *Controller) ListCertificados(c *fiber.Ctx) error {
	certificados := models.CertificadosAprobados(ctrl.Store.List())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificados obtenidos correctamente!", fiber.Map{
		"certificados": certificados,
		"total":        len(certificados),
	})
}

func (ctrl *Controller) findCertificado(idParam string) (models.Certificado, bool) {
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return models.Certificado{}, false
	}
	for _, cert := range models.CertificadosAprobados(ctrl.Store.List()) {
		if cert.ID == id {
			return cert, true
		}
	}
	return models.Certificado{}, false
}

// DownloadCertificado serves the printable document as a file attachment.
func (ctrl *Controller) DownloadCertificado(c *fiber.Ctx) error {
	cert, ok := ctrl.findCertificado(c.Params("id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificado no encontrado!", nil)
	}

	contenido, err := documento.Render(cert)
	if err != nil {
		log.Printf("Error rendering certificado %s: %v", cert.Numero, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false,
			"Error al generar el certificado. Por favor intenta nuevamente.", nil)
	}

	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, documento.Filename(cert.Numero)))
	return c.SendString(contenido)
}

// ExportCertificado is the export operation layered over the renderer: it hands
// back the document, its filename and the print-to-PDF instructions in one
// JSON payload.
func (ctrl *Controller) ExportCertificado(c *fiber.Ctx) error {
	cert, ok := ctrl.findCertificado(c.Params("id"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificado no encontrado!", nil)
	}

	contenido, err := documento.Render(cert)
	if err != nil {
		log.Printf("Error rendering certificado %s: %v", cert.Numero, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false,
			"Error al generar el certificado. Por favor intenta nuevamente.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificado generado correctamente!", fiber.Map{
		"archivo":       documento.Filename(cert.Numero),
		"contenido":     contenido,
		"instrucciones": documento.Instrucciones,
	})
}
