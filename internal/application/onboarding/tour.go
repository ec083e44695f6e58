package onboarding

import (
	"github.com/google/uuid"

	"github.com/lucatax/luca-api/internal/application/dto"
	"github.com/lucatax/luca-api/internal/domain"
	"github.com/lucatax/luca-api/internal/domain/entity"
)

// Pasos del tour de bienvenida.
const (
	tourStepWelcome      = 1
	tourStepInstructions = 2
	tourStepSuccess      = 3
)

// StartTour activa el tour en el paso 1. Si ya se mostró o se saltó en esta
// sesión, no vuelve a arrancar. Si la lista está vacía se agrega una primera
// entrada para que el usuario tenga dónde empezar.
func (uc *OnboardingUseCase) StartTour(sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Tour.Shown || s.Tour.Skipped {
		return uc.snapshotLocked(s), nil
	}

	s.Tour = TourState{Active: true, Step: tourStepWelcome, Shown: true}
	uc.markTourShown(s)

	if len(s.Companies) == 0 {
		entry := &entity.CompanyEntry{
			ID:       uuid.New().String(),
			Status:   entity.StatusIncomplete,
			Expanded: true,
		}
		s.Companies = append(s.Companies, entry)
		s.CompanyCounter++
	}
	return uc.snapshotLocked(s), nil
}

// AdvanceTour avanza al siguiente paso. Desde el paso final, avanzar cierra.
func (uc *OnboardingUseCase) AdvanceTour(sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Tour.Active {
		return nil, domain.ErrConflict
	}
	if s.Tour.Step >= tourStepSuccess {
		uc.closeTourLocked(s, false)
	} else {
		s.Tour.Step++
	}
	return uc.snapshotLocked(s), nil
}

// SkipTour salta el tour desde cualquier paso; es terminal para la sesión.
func (uc *OnboardingUseCase) SkipTour(sessionID string) (*dto.SessionResponse, error) {
	return uc.dismissTour(sessionID, true)
}

// CloseTour cierra el tour; igual que saltar, suprime futuros auto-arranques.
func (uc *OnboardingUseCase) CloseTour(sessionID string) (*dto.SessionResponse, error) {
	return uc.dismissTour(sessionID, true)
}

func (uc *OnboardingUseCase) dismissTour(sessionID string, skipped bool) (*dto.SessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	uc.closeTourLocked(s, skipped)
	return uc.snapshotLocked(s), nil
}

// closeTourLocked apaga el tour y persiste el flag de "ya mostrado".
// Llamar con el lock de la sesión tomado.
func (uc *OnboardingUseCase) closeTourLocked(s *Session, skipped bool) {
	s.stopTourTimer()
	s.Tour.Active = false
	s.Tour.Shown = true
	if skipped {
		s.Tour.Skipped = true
	}
	uc.markTourShown(s)
}

func (uc *OnboardingUseCase) markTourShown(s *Session) {
	if err := uc.drafts.Set(tourShownKeyPrefix+s.OwnerID, "true"); err != nil {
		uc.log.Warn().Err(err).Msg("persistir flag de tour")
	}
}

// restoreTourShown consulta el flag persistido. Bajo la política de
// reanudación, un tour ya mostrado o descartado no vuelve a arrancar en la
// sesión siguiente.
func (uc *OnboardingUseCase) restoreTourShown(s *Session) {
	raw, ok, err := uc.drafts.Get(tourShownKeyPrefix + s.OwnerID)
	if err != nil {
		uc.log.Warn().Err(err).Msg("lectura de flag de tour")
		return
	}
	if ok && raw == "true" {
		s.Tour.Shown = true
	}
}

// afterCountChange reacciona a transiciones del conteo de empresas válidas:
//   - 0 → ≥1 con el tour activo en el paso de instrucciones: avanza solo al
//     paso de éxito y arma el auto-cierre.
//   - de vuelta a 0: desarma el auto-cierre pendiente.
//
// Llamar con el lock de la sesión tomado y el conteo ya recalculado.
func (uc *OnboardingUseCase) afterCountChange(s *Session, prev, now int) {
	if prev == 0 && now >= 1 && s.Tour.Active && s.Tour.Step == tourStepInstructions {
		s.Tour.Step = tourStepSuccess
		uc.armTourAutoClose(s)
	}
	if now == 0 {
		s.stopTourTimer()
	}
}

// armTourAutoClose programa el cierre del paso de éxito. El callback toma el
// lock y verifica que el tour siga activo en ese paso antes de cerrar.
func (uc *OnboardingUseCase) armTourAutoClose(s *Session) {
	s.stopTourTimer()
	s.tourCloseTimer = uc.newTimer(uc.cfg.TourCloseAfter, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.Tour.Active && s.Tour.Step == tourStepSuccess {
			uc.closeTourLocked(s, false)
		}
	})
}
