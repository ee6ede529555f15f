package models

import "strings"

// Estado de una solicitud. "rechazado" is a valid value but no operation in this
// service transitions into it; rejection belongs to the registry back office.
type Estado string

const (
	EstadoEnProceso Estado = "en_proceso"
	EstadoAprobado  Estado = "aprobado"
	EstadoRechazado Estado = "rechazado"
)

// DatosSolicitud is the full field set of a birth-certificate application form.
type DatosSolicitud struct {
	// Datos del solicitante
	CedulaSolicitante    string `json:"cedula_solicitante" validate:"required"`
	NombreSolicitante    string `json:"nombre_solicitante" validate:"required"`
	ApellidosSolicitante string `json:"apellidos_solicitante" validate:"required"`
	TelefonoSolicitante  string `json:"telefono_solicitante"`
	EmailSolicitante     string `json:"email_solicitante" validate:"required,email"`

	// Datos de la persona del certificado
	CedulaPersona   string `json:"cedula_persona"`
	NombrePersona   string `json:"nombre_persona" validate:"required"`
	SegundoNombre   string `json:"segundo_nombre"`
	PrimerApellido  string `json:"primer_apellido" validate:"required"`
	SegundoApellido string `json:"segundo_apellido"`

	// Información de nacimiento
	FechaNacimiento         string `json:"fecha_nacimiento" validate:"required"`
	HoraNacimiento          string `json:"hora_nacimiento"`
	LugarNacimiento         string `json:"lugar_nacimiento" validate:"required"`
	ProvinciaNacimiento     string `json:"provincia_nacimiento" validate:"required"`
	DistritoNacimiento      string `json:"distrito_nacimiento" validate:"required"`
	CorregimientoNacimiento string `json:"corregimiento_nacimiento"`

	// Datos del padre
	NombrePadre       string `json:"nombre_padre"`
	ApellidosPadre    string `json:"apellidos_padre"`
	CedulaPadre       string `json:"cedula_padre"`
	NacionalidadPadre string `json:"nacionalidad_padre"`

	// Datos de la madre
	NombreMadre       string `json:"nombre_madre"`
	ApellidosMadre    string `json:"apellidos_madre"`
	CedulaMadre       string `json:"cedula_madre"`
	NacionalidadMadre string `json:"nacionalidad_madre"`

	// Información adicional
	Sexo              string `json:"sexo" validate:"required,oneof=M F"`
	Nacionalidad      string `json:"nacionalidad"`
	EstadoCivilPadres string `json:"estado_civil_padres"`
	NumeroPartida     string `json:"numero_partida"`
	Folio             string `json:"folio"`
	Libro             string `json:"libro"`
	MotivoSolicitud   string `json:"motivo_solicitud" validate:"omitempty,oneof='Primera vez' Reemplazo Corrección"`
}

// NombreCompleto joins the non-empty name parts of the certificate subject with
// single spaces.
func (d DatosSolicitud) NombreCompleto() string {
	partes := make([]string, 0, 4)
	for _, p := range []string{d.NombrePersona, d.SegundoNombre, d.PrimerApellido, d.SegundoApellido} {
		if p != "" {
			partes = append(partes, p)
		}
	}
	return strings.Join(partes, " ")
}

// Solicitud is one submitted birth-certificate application, tracked by status.
// Only Estado and Observaciones change after creation, and only on approval.
type Solicitud struct {
	ID             int64          `json:"id"`
	Numero         string         `json:"numero"`
	Persona        string         `json:"persona"`
	FechaSolicitud string         `json:"fecha_solicitud"`
	Estado         Estado         `json:"estado"`
	Observaciones  string         `json:"observaciones"`
	Datos          DatosSolicitud `json:"datos_completos"`
}
