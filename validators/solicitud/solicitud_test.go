package solicitudValidator

import (
	"testing"

	"docutrack/models"

	"github.com/stretchr/testify/assert"
)

func datosValidos() models.DatosSolicitud {
	return models.DatosSolicitud{
		CedulaSolicitante:    "8-123-456",
		NombreSolicitante:    "Carlos",
		ApellidosSolicitante: "Mendoza",
		EmailSolicitante:     "carlos@example.com",
		NombrePersona:        "Ana",
		PrimerApellido:       "Pérez",
		Sexo:                 "F",
		FechaNacimiento:      "2020-03-15",
		LugarNacimiento:      "Hospital Santo Tomás",
		ProvinciaNacimiento:  "Panamá",
		DistritoNacimiento:   "Panamá",
	}
}

func TestValidateDatos(t *testing.T) {
	t.Run("accepts a complete form", func(t *testing.T) {
		assert.Empty(t, ValidateDatos(datosValidos()))
	})

	t.Run("reports every missing required field under its form name", func(t *testing.T) {
		errores := ValidateDatos(models.DatosSolicitud{})

		for _, campo := range []string{
			"cedula_solicitante", "nombre_solicitante", "apellidos_solicitante",
			"email_solicitante", "nombre_persona", "primer_apellido", "sexo",
			"fecha_nacimiento", "lugar_nacimiento", "provincia_nacimiento",
			"distrito_nacimiento",
		} {
			assert.Contains(t, errores, campo)
		}
	})

	t.Run("checks requester email format", func(t *testing.T) {
		datos := datosValidos()
		datos.EmailSolicitante = "no-es-un-email"

		errores := ValidateDatos(datos)
		assert.Equal(t, "Email inválido", errores["email_solicitante"])
	})

	t.Run("restricts sexo to the form's options", func(t *testing.T) {
		datos := datosValidos()
		datos.Sexo = "X"

		errores := ValidateDatos(datos)
		assert.Equal(t, "Valor no permitido", errores["sexo"])
	})

	t.Run("motivo is optional but restricted when present", func(t *testing.T) {
		datos := datosValidos()
		datos.MotivoSolicitud = ""
		assert.Empty(t, ValidateDatos(datos))

		datos.MotivoSolicitud = "Reemplazo"
		assert.Empty(t, ValidateDatos(datos))

		datos.MotivoSolicitud = "Otro motivo"
		assert.Contains(t, ValidateDatos(datos), "motivo_solicitud")
	})
}
