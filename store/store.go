package store

import (
	"fmt"
	"sync"
	"time"

	"docutrack/models"
)

const (
	// Request numbers keep the suffix of the year the tracking campaign was
	// issued under, matching the numbers already printed on receipts.
	anioReferencia = "2024"

	observacionRecibida = "Solicitud recibida, en proceso de revisión"
	observacionAprobada = "Solicitud aprobada - Certificado listo para descarga"
)

// Store holds the session's solicitudes in insertion order. It lives only in
// process memory; nothing is ever persisted or deleted.
type Store struct {
	mu          sync.RWMutex
	solicitudes []models.Solicitud
	lastID      int64
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Create builds a new solicitud from the submitted form data, appends it and
// returns a copy. The identifier is derived from the submission timestamp in
// milliseconds and bumped when two submissions land on the same millisecond, so
// identifiers are unique and strictly increasing within a session.
func (s *Store) Create(datos models.DatosSolicitud) models.Solicitud {
	s.mu.Lock()
	defer s.mu.Unlock()

	creada := time.Now()
	id := creada.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	sol := models.Solicitud{
		ID:             id,
		Numero:         numeroSolicitud(id),
		Persona:        datos.NombreCompleto(),
		FechaSolicitud: creada.Format("2006-01-02"),
		Estado:         models.EstadoEnProceso,
		Observaciones:  observacionRecibida,
		Datos:          datos,
	}
	s.solicitudes = append(s.solicitudes, sol)
	return sol
}

// Approve marks the pending solicitud with the given id as approved and updates
// its observaciones. Unknown ids and solicitudes already in a terminal state are
// left untouched and reported as false.
func (s *Store) Approve(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.solicitudes {
		if s.solicitudes[i].ID == id && s.solicitudes[i].Estado == models.EstadoEnProceso {
			s.solicitudes[i].Estado = models.EstadoAprobado
			s.solicitudes[i].Observaciones = observacionAprobada
			return true
		}
	}
	return false
}

// ApproveFirstPending approves the oldest solicitud still in process, by
// insertion order, and returns it after the transition. The scan and the
// transition share one lock so two concurrent callers can never approve the
// same entry. Used by the demo approval control, which takes no explicit id.
func (s *Store) ApproveFirstPending() (models.Solicitud, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.solicitudes {
		if s.solicitudes[i].Estado == models.EstadoEnProceso {
			s.solicitudes[i].Estado = models.EstadoAprobado
			s.solicitudes[i].Observaciones = observacionAprobada
			return s.solicitudes[i], true
		}
	}
	return models.Solicitud{}, false
}

// FirstPending returns the oldest solicitud still in process, by insertion
// order, without changing it.
func (s *Store) FirstPending() (models.Solicitud, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sol := range s.solicitudes {
		if sol.Estado == models.EstadoEnProceso {
			return sol, true
		}
	}
	return models.Solicitud{}, false
}

// List returns a snapshot of all solicitudes in insertion order.
func (s *Store) List() []models.Solicitud {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Solicitud, len(s.solicitudes))
	copy(out, s.solicitudes)
	return out
}

// numeroSolicitud derives the human-readable reference from the id: the last
// six digits of the millisecond timestamp plus the campaign year suffix.
func numeroSolicitud(id int64) string {
	digits := fmt.Sprintf("%d", id)
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}
	return fmt.Sprintf("SOL-%s-%s", digits, anioReferencia)
}
