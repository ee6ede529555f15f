package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solicitudCon(id int64, numero string, estado Estado) Solicitud {
	return Solicitud{
		ID:      id,
		Numero:  numero,
		Persona: "Ana Pérez Gómez",
		Estado:  estado,
		Datos: DatosSolicitud{
			NombrePersona:  "Ana",
			PrimerApellido: "Pérez",
		},
	}
}

func TestCertificadosAprobados(t *testing.T) {
	t.Run("one certificate per approved solicitud, order preserved", func(t *testing.T) {
		entrada := []Solicitud{
			solicitudCon(1, "SOL-000001-2024", EstadoAprobado),
			solicitudCon(2, "SOL-000002-2024", EstadoEnProceso),
			solicitudCon(3, "SOL-000003-2024", EstadoAprobado),
			solicitudCon(4, "SOL-000004-2024", EstadoRechazado),
		}

		certificados := CertificadosAprobados(entrada)

		require.Len(t, certificados, 2)
		assert.Equal(t, int64(1), certificados[0].ID)
		assert.Equal(t, int64(3), certificados[1].ID)
	})

	t.Run("derives number, date and availability", func(t *testing.T) {
		certificados := CertificadosAprobados([]Solicitud{
			solicitudCon(1, "SOL-000001-2024", EstadoAprobado),
		})

		require.Len(t, certificados, 1)
		cert := certificados[0]
		assert.Equal(t, "CN-000001-2024", cert.Numero)
		assert.Equal(t, time.Now().Format("2006-01-02"), cert.FechaExpedicion)
		assert.True(t, cert.Disponible)
		assert.Equal(t, "Ana Pérez Gómez", cert.Persona)
		assert.Equal(t, "Ana", cert.Datos.NombrePersona)
	})

	t.Run("no approved solicitudes means no certificates", func(t *testing.T) {
		certificados := CertificadosAprobados([]Solicitud{
			solicitudCon(1, "SOL-000001-2024", EstadoEnProceso),
			solicitudCon(2, "SOL-000002-2024", EstadoRechazado),
		})
		assert.Empty(t, certificados)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		entrada := []Solicitud{solicitudCon(1, "SOL-000001-2024", EstadoAprobado)}
		CertificadosAprobados(entrada)
		assert.Equal(t, "SOL-000001-2024", entrada[0].Numero)
	})
}
