package store

import (
	"regexp"
	"sync"
	"testing"

	"docutrack/models"

	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	store *Store
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) datos(nombre string) models.DatosSolicitud {
	return models.DatosSolicitud{
		CedulaSolicitante:    "8-123-456",
		NombreSolicitante:    "Carlos",
		ApellidosSolicitante: "Mendoza",
		EmailSolicitante:     "carlos@example.com",
		NombrePersona:        nombre,
		PrimerApellido:       "Pérez",
		SegundoApellido:      "Gómez",
		Sexo:                 "F",
		FechaNacimiento:      "2020-03-15",
		LugarNacimiento:      "Hospital Santo Tomás",
		ProvinciaNacimiento:  "Panamá",
		DistritoNacimiento:   "Panamá",
		MotivoSolicitud:      "Primera vez",
	}
}

// TestCreate verifies submission creates exactly one pending entry with the
// fields attached verbatim.
func (s *StoreSuite) TestCreate() {
	datos := s.datos("Ana")

	sol := s.store.Create(datos)

	lista := s.store.List()
	s.Require().Len(lista, 1)
	s.Equal(sol, lista[0])
	s.Equal(models.EstadoEnProceso, sol.Estado)
	s.Equal(datos, sol.Datos)
	s.Equal("Solicitud recibida, en proceso de revisión", sol.Observaciones)
	s.Equal("Ana Pérez Gómez", sol.Persona)
	s.Regexp(regexp.MustCompile(`^SOL-\d{6}-2024$`), sol.Numero)
	s.Regexp(regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), sol.FechaSolicitud)
}

// TestIdentifiers verifies ids are unique and strictly increasing even when
// submissions land on the same millisecond.
func (s *StoreSuite) TestIdentifiers() {
	seen := make(map[int64]bool)
	var last int64
	for i := 0; i < 20; i++ {
		sol := s.store.Create(s.datos("Ana"))
		s.False(seen[sol.ID], "id reused: %d", sol.ID)
		seen[sol.ID] = true
		s.Greater(sol.ID, last)
		last = sol.ID
	}
}

func (s *StoreSuite) TestApprove() {
	sol := s.store.Create(s.datos("Ana"))

	s.Run("pending solicitud becomes approved", func() {
		s.True(s.store.Approve(sol.ID))

		lista := s.store.List()
		s.Equal(models.EstadoAprobado, lista[0].Estado)
		s.Equal("Solicitud aprobada - Certificado listo para descarga", lista[0].Observaciones)
	})

	s.Run("approving a terminal solicitud is a no-op", func() {
		s.False(s.store.Approve(sol.ID))

		lista := s.store.List()
		s.Require().Len(lista, 1)
		s.Equal(models.EstadoAprobado, lista[0].Estado)
	})

	s.Run("approving an unknown id changes nothing", func() {
		otra := s.store.Create(s.datos("Luis"))

		s.False(s.store.Approve(sol.ID + otra.ID))

		lista := s.store.List()
		s.Require().Len(lista, 2)
		s.Equal(models.EstadoAprobado, lista[0].Estado)
		s.Equal(models.EstadoEnProceso, lista[1].Estado)
	})
}

func (s *StoreSuite) TestApproveFirstPending() {
	s.Run("empty store has nothing to approve", func() {
		_, ok := s.store.ApproveFirstPending()
		s.False(ok)
	})

	s.Run("approves the oldest pending entry in one step", func() {
		primera := s.store.Create(s.datos("Ana"))
		s.store.Create(s.datos("Luis"))

		aprobada, ok := s.store.ApproveFirstPending()
		s.Require().True(ok)
		s.Equal(primera.ID, aprobada.ID)
		s.Equal(models.EstadoAprobado, aprobada.Estado)
		s.Equal("Solicitud aprobada - Certificado listo para descarga", aprobada.Observaciones)

		lista := s.store.List()
		s.Equal(models.EstadoAprobado, lista[0].Estado)
		s.Equal(models.EstadoEnProceso, lista[1].Estado)
	})
}

// TestApproveFirstPendingConcurrent verifies concurrent callers each approve a
// distinct solicitud: with two pending entries and many callers, exactly two
// succeed and they never report the same id.
func (s *StoreSuite) TestApproveFirstPendingConcurrent() {
	s.store.Create(s.datos("Ana"))
	s.store.Create(s.datos("Luis"))

	ids := make(chan int64, 8)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sol, ok := s.store.ApproveFirstPending(); ok {
				ids <- sol.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		s.False(seen[id], "solicitud %d approved twice", id)
		seen[id] = true
	}
	s.Len(seen, 2)
}

func (s *StoreSuite) TestFirstPending() {
	s.Run("empty store has none", func() {
		_, ok := s.store.FirstPending()
		s.False(ok)
	})

	s.Run("picks oldest pending by insertion order", func() {
		primera := s.store.Create(s.datos("Ana"))
		s.store.Create(s.datos("Luis"))

		pendiente, ok := s.store.FirstPending()
		s.Require().True(ok)
		s.Equal(primera.ID, pendiente.ID)
	})

	s.Run("skips approved entries", func() {
		lista := s.store.List()
		s.store.Approve(lista[0].ID)

		pendiente, ok := s.store.FirstPending()
		s.Require().True(ok)
		s.Equal(lista[1].ID, pendiente.ID)
	})
}

// TestListSnapshot verifies List hands out copies, not the backing slice.
func (s *StoreSuite) TestListSnapshot() {
	s.store.Create(s.datos("Ana"))

	lista := s.store.List()
	lista[0].Estado = models.EstadoRechazado

	s.Equal(models.EstadoEnProceso, s.store.List()[0].Estado)
}
