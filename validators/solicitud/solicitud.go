package solicitudValidator

import (
	"errors"
	"reflect"
	"strings"

	"docutrack/middleware"
	"docutrack/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the form's field names, not Go identifiers
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es requerido"
	case "email":
		return "Email inválido"
	case "oneof":
		return "Valor no permitido"
	}
	return "Valor inválido"
}

// ValidateDatos checks the application form and returns all violations keyed
// by field name.
func ValidateDatos(datos models.DatosSolicitud) map[string]string {
	violations := make(map[string]string)

	if err := validate.Struct(datos); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fe := range fieldErrors {
				violations[fe.Field()] = mensaje(fe)
			}
		} else {
			violations["datos"] = "Datos inválidos"
		}
	}
	return violations
}

// Create validator middleware for new solicitudes
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		datos := new(models.DatosSolicitud)
		if err := c.BodyParser(datos); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := ValidateDatos(*datos); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
