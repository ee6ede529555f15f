package models

import (
	"strings"

	"github.com/jinzhu/now"
)

// Certificado is a read-only projection of an approved Solicitud. It is derived
// on every read and never stored.
type Certificado struct {
	ID              int64          `json:"id"`
	Numero          string         `json:"numero"`
	Persona         string         `json:"persona"`
	FechaExpedicion string         `json:"fecha_expedicion"`
	Disponible      bool           `json:"disponible"`
	Datos           DatosSolicitud `json:"datos_completos"`
}

// CertificadosAprobados derives the downloadable certificates from the given
// solicitudes: one per approved entry, input order preserved. The certificate
// number swaps the request prefix for the certificate prefix and the issue date
// is always the day of the call.
func CertificadosAprobados(solicitudes []Solicitud) []Certificado {
	expedicion := now.BeginningOfDay().Format("2006-01-02")

	certificados := make([]Certificado, 0)
	for _, sol := range solicitudes {
		if sol.Estado != EstadoAprobado {
			continue
		}
		certificados = append(certificados, Certificado{
			ID:              sol.ID,
			Numero:          strings.Replace(sol.Numero, "SOL-", "CN-", 1),
			Persona:         sol.Persona,
			FechaExpedicion: expedicion,
			Disponible:      true,
			Datos:           sol.Datos,
		})
	}
	return certificados
}
