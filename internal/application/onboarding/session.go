package onboarding

import (
	"sync"
	"time"

	"github.com/lucatax/luca-api/internal/application/dto"
	"github.com/lucatax/luca-api/internal/domain/entity"
)

// Claves del almacén clave-valor. Por compatibilidad con el cliente web se
// conservan los nombres históricos "luca-*".
const (
	draftKeyPrefix     = "luca-onboarding-draft:"
	tourShownKeyPrefix = "luca-tour-shown:"
)

// Kinds de intents de UI emitidos por el núcleo.
const (
	IntentScrollBottom = "scroll_bottom"
	IntentFocusEntry   = "focus_entry"
	IntentExpandEntry  = "expand_entry"
)

// scrollThreshold número de entradas a partir del cual se pide a la UI
// desplazarse al fondo de la lista al agregar una nueva.
const scrollThreshold = 6

// TourState máquina del tour de bienvenida: 3 pasos lineales.
// {inactivo} → 1 (bienvenida) → 2 (instrucciones) → 3 (éxito) → {cerrado}.
// Saltar o cerrar desde cualquier paso es terminal para la sesión.
type TourState struct {
	Active  bool
	Step    int
	Skipped bool
	Shown   bool
}

// Session una ejecución del asistente de vinculación. Todo acceso pasa por el
// mutex: el "hilo único de UI" del cliente se convierte aquí en exclusión
// mutua por sesión, y los callbacks diferidos de validación toman el mismo
// lock y releen el estado vivo antes de escribir.
type Session struct {
	mu sync.Mutex

	ID      string
	OwnerID string

	Companies         []*entity.CompanyEntry
	ValidCompanyCount int
	CompanyCounter    int
	HasDraft          bool
	Tour              TourState

	// Generación por categoría de campo y entrada: cada edición la incrementa,
	// y un callback diferido que cargue una generación vieja no escribe nada.
	rucGen  map[string]uint64
	credGen map[string]uint64

	intents []dto.IntentResponse

	tourCloseTimer *time.Timer
}

func newSession(id, ownerID string) *Session {
	return &Session{
		ID:      id,
		OwnerID: ownerID,
		Tour:    TourState{Step: 1},
		rucGen:  make(map[string]uint64),
		credGen: make(map[string]uint64),
	}
}

// findEntry devuelve la entrada por id o nil. Llamar con el lock tomado.
func (s *Session) findEntry(id string) *entity.CompanyEntry {
	for _, c := range s.Companies {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// recount recalcula ValidCompanyCount filtrando la lista completa. Nunca se
// mantiene por deltas: el conteo siempre es derivado del estado vivo.
func (s *Session) recount() int {
	n := 0
	for _, c := range s.Companies {
		if c.IsValid {
			n++
		}
	}
	s.ValidCompanyCount = n
	return n
}

// isDuplicateRuc informa si otro registro de la lista ya usa el RUC.
// La detección es por lista, no global.
func (s *Session) isDuplicateRuc(entryID, rucValue string) bool {
	for _, c := range s.Companies {
		if c.ID != entryID && c.Ruc == rucValue {
			return true
		}
	}
	return false
}

// collapseAll colapsa todas las entradas (invariante de acordeón).
func (s *Session) collapseAll() {
	for _, c := range s.Companies {
		c.Expanded = false
	}
}

// pushIntent acumula un efecto de UI para drenar en el próximo snapshot.
func (s *Session) pushIntent(kind, entryID string) {
	s.intents = append(s.intents, dto.IntentResponse{Kind: kind, EntryID: entryID})
}

// drainIntents devuelve y limpia los intents acumulados.
func (s *Session) drainIntents() []dto.IntentResponse {
	out := s.intents
	s.intents = nil
	return out
}

// stopTourTimer cancela el auto-cierre del paso final si está armado.
func (s *Session) stopTourTimer() {
	if s.tourCloseTimer != nil {
		s.tourCloseTimer.Stop()
		s.tourCloseTimer = nil
	}
}
