package onboarding

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lucatax/luca-api/internal/application/dto"
	"github.com/lucatax/luca-api/internal/application/ports"
	"github.com/lucatax/luca-api/internal/domain"
	"github.com/lucatax/luca-api/internal/domain/entity"
	"github.com/lucatax/luca-api/internal/domain/repository"
	"github.com/lucatax/luca-api/pkg/logger"
	"github.com/lucatax/luca-api/pkg/ruc"
)

// Campos editables de una entrada.
const (
	FieldRuc         = "ruc"
	FieldSolUser     = "solUser"
	FieldSolPassword = "solPassword"
)

// Config parámetros del asistente.
type Config struct {
	// ValidationDelay latencia antes de resolver una validación diferida.
	// El contrato del núcleo es solo "termina eventualmente".
	ValidationDelay time.Duration
	// ResumeDraftOnLoad política de arranque: restaurar o purgar el borrador.
	ResumeDraftOnLoad bool
	// TourCloseAfter auto-cierre del paso final del tour.
	TourCloseAfter time.Duration
}

// OnboardingUseCase orquesta las sesiones del asistente de vinculación:
// entradas, validaciones diferidas contra el directorio SUNAT, derivación de
// estados, borradores y tour. Las sesiones viven en memoria; el borrador en el
// DraftStore.
type OnboardingUseCase struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	directory ports.CompanyDirectory
	drafts    repository.DraftStore
	companies repository.CompanyRepository
	cfg       Config
	log       *logger.Logger
}

// NewOnboardingUseCase construye el caso de uso con sus puertos.
func NewOnboardingUseCase(
	directory ports.CompanyDirectory,
	drafts repository.DraftStore,
	companies repository.CompanyRepository,
	cfg Config,
	log *logger.Logger,
) *OnboardingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OnboardingUseCase{
		sessions:  make(map[string]*Session),
		directory: directory,
		drafts:    drafts,
		companies: companies,
		cfg:       cfg,
		log:       log,
	}
}

// newTimer programa un callback diferido. Indirección mínima sobre
// time.AfterFunc; los tests acortan las duraciones vía Config.
func (uc *OnboardingUseCase) newTimer(d time.Duration, f func()) *time.Timer {
	return time.AfterFunc(d, f)
}

// draftPayload snapshot serializado del borrador.
type draftPayload struct {
	Companies         []*entity.CompanyEntry `json:"companies"`
	ValidCompanyCount int                    `json:"validCompanyCount"`
	CompanyCounter    int                    `json:"companyCounter"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de la sesión
// ─────────────────────────────────────────────────────────────────────────────

// StartSession crea una sesión para el usuario. Según la política configurada,
// el borrador previo se purga (comportamiento histórico) o se restaura.
func (uc *OnboardingUseCase) StartSession(ownerID string) (*dto.SessionResponse, error) {
	s := newSession(uuid.New().String(), ownerID)

	if uc.cfg.ResumeDraftOnLoad {
		uc.restoreDraft(s)
		uc.restoreTourShown(s)
	} else {
		// Purga incondicional: borrador y flag de tour no sobreviven un arranque.
		if err := uc.drafts.Remove(draftKeyPrefix + ownerID); err != nil {
			uc.log.Warn().Err(err).Str("owner", ownerID).Msg("purga de borrador")
		}
		if err := uc.drafts.Remove(tourShownKeyPrefix + ownerID); err != nil {
			uc.log.Warn().Err(err).Str("owner", ownerID).Msg("purga de flag de tour")
		}
	}

	uc.mu.Lock()
	uc.sessions[s.ID] = s
	uc.mu.Unlock()

	uc.log.Info().Str("session", s.ID).Bool("resumed", s.HasDraft).Msg("sesión de onboarding iniciada")
	return uc.snapshot(s), nil
}

// restoreDraft intenta cargar el borrador persistido dentro de la sesión.
// Cualquier fallo deja la sesión limpia; nunca es fatal.
func (uc *OnboardingUseCase) restoreDraft(s *Session) {
	raw, ok, err := uc.drafts.Get(draftKeyPrefix + s.OwnerID)
	if err != nil || !ok {
		if err != nil {
			uc.log.Warn().Err(err).Msg("lectura de borrador")
		}
		return
	}
	var payload draftPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		uc.log.Warn().Err(err).Msg("borrador corrupto, se descarta")
		return
	}
	s.Companies = payload.Companies
	s.CompanyCounter = payload.CompanyCounter
	// El conteo nunca se confía del snapshot: se recalcula del estado vivo.
	s.recount()
	s.HasDraft = true

	// Un borrador guardado en pleno "validating" serializa un sub-estado
	// transitorio sin timer que lo resuelva. Se rearma la validación con una
	// generación nueva para que termine igual que una edición en vivo.
	for _, entry := range s.Companies {
		if entry.ValidationState.Ruc == entity.RucValidating {
			s.rucGen[entry.ID]++
			uc.scheduleRucValidation(s, entry.ID, s.rucGen[entry.ID])
		}
		if entry.ValidationState.Credentials == entity.CredValidating {
			s.credGen[entry.ID]++
			uc.scheduleCredentialValidation(s, entry.ID, s.credGen[entry.ID])
		}
	}
}

// GetSession devuelve el snapshot actual (drena los intents pendientes).
func (uc *OnboardingUseCase) GetSession(sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return uc.snapshotLocked(s), nil
}

func (uc *OnboardingUseCase) session(id string) (*Session, error) {
	uc.mu.RLock()
	s, ok := uc.sessions[id]
	uc.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Acciones sobre entradas
// ─────────────────────────────────────────────────────────────────────────────

// AddCompany agrega una entrada vacía expandida y colapsa el resto.
func (uc *OnboardingUseCase) AddCompany(sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collapseAll()
	entry := &entity.CompanyEntry{
		ID:       uuid.New().String(),
		Status:   entity.StatusIncomplete,
		Expanded: true,
	}
	s.Companies = append(s.Companies, entry)
	s.CompanyCounter++

	if len(s.Companies) >= scrollThreshold {
		s.pushIntent(IntentScrollBottom, "")
	}
	return uc.snapshotLocked(s), nil
}

// DeleteCompany elimina una entrada. Nada se borra implícitamente: solo esta
// acción explícita saca entradas de la lista.
func (uc *OnboardingUseCase) DeleteCompany(sessionID, entryID string) (*dto.SessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.Companies[:0]
	found := false
	for _, c := range s.Companies {
		if c.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	s.Companies = kept
	delete(s.rucGen, entryID)
	delete(s.credGen, entryID)

	prev := s.ValidCompanyCount
	uc.afterCountChange(s, prev, s.recount())
	return uc.snapshotLocked(s), nil
}

// ToggleExpand expande/colapsa una entrada manteniendo el invariante de
// acordeón: como máximo una expandida.
func (uc *OnboardingUseCase) ToggleExpand(sessionID, entryID string) (*dto.SessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.findEntry(entryID)
	if target == nil {
		return nil, domain.ErrNotFound
	}
	expand := !target.Expanded
	s.collapseAll()
	target.Expanded = expand
	return uc.snapshotLocked(s), nil
}

// UpdateField guarda el valor crudo de inmediato (optimista) y aplica la
// política de validación del campo. Las validaciones asíncronas quedan
// programadas; al resolverse releen el estado vivo.
func (uc *OnboardingUseCase) UpdateField(sessionID, entryID, field, value string) (*dto.SessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.findEntry(entryID)
	if entry == nil {
		return nil, domain.ErrNotFound
	}

	switch field {
	case FieldRuc:
		uc.applyRucEdit(s, entry, value)
	case FieldSolUser:
		entry.SolUser = value
		uc.applyCredentialEdit(s, entry)
	case FieldSolPassword:
		entry.SolPassword = value
		uc.applyCredentialEdit(s, entry)
	default:
		return nil, domain.ErrInvalidInput
	}

	prev := s.ValidCompanyCount
	uc.afterCountChange(s, prev, s.recount())
	return uc.snapshotLocked(s), nil
}

// applyRucEdit política del campo RUC:
//   - vacío: sub-estados a cero, derivados limpios (un RUC inválido invalida
//     también la verificación de credenciales).
//   - no completo (a medio digitar, con letras o con dígitos de más): el
//     sub-estado no se marca inválido, pero cualquier validación previa se
//     limpia; el estado global deriva no_valido por forma.
//   - 11 dígitos: entra en "validating" y se programa la resolución diferida.
//
// Toda edición incrementa la generación del campo: un callback pendiente de
// una edición anterior queda superseded y no escribe nada.
func (uc *OnboardingUseCase) applyRucEdit(s *Session, entry *entity.CompanyEntry, value string) {
	entry.Ruc = value
	s.rucGen[entry.ID]++
	gen := s.rucGen[entry.ID]

	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		entry.ValidationState.Ruc = entity.RucNone
		entry.ValidationState.Credentials = entity.CredNone
		entry.ClearDerived()
		applyStatus(entry)

	case !ruc.IsComplete(trimmed):
		if entry.ValidationState.Ruc != entity.RucNone {
			entry.ValidationState.Ruc = entity.RucNone
			entry.ValidationState.Credentials = entity.CredNone
			entry.ClearDerived()
		}
		applyStatus(entry)

	default:
		entry.ValidationState.Ruc = entity.RucValidating
		applyStatus(entry)
		uc.scheduleRucValidation(s, entry.ID, gen)
	}
}

// applyCredentialEdit política de credenciales tras editar usuario o clave:
//   - ambos vacíos o uno solo lleno: sub-estado a cero, no se validan
//     credenciales parciales.
//   - ambos llenos y RUC válido/inactivo: entra en "validating" y se programa
//     la resolución diferida.
func (uc *OnboardingUseCase) applyCredentialEdit(s *Session, entry *entity.CompanyEntry) {
	s.credGen[entry.ID]++
	gen := s.credGen[entry.ID]

	rucState := entry.ValidationState.Ruc
	if hasBothCredentials(entry) && (rucState == entity.RucValid || rucState == entity.RucInactive) {
		entry.ValidationState.Credentials = entity.CredValidating
		applyStatus(entry)
		uc.scheduleCredentialValidation(s, entry.ID, gen)
		return
	}

	entry.ValidationState.Credentials = entity.CredNone
	applyStatus(entry)
}

// ─────────────────────────────────────────────────────────────────────────────
// Validaciones diferidas
// ─────────────────────────────────────────────────────────────────────────────

func (uc *OnboardingUseCase) scheduleRucValidation(s *Session, entryID string, gen uint64) {
	uc.newTimer(uc.cfg.ValidationDelay, func() {
		uc.resolveRucValidation(s, entryID, gen)
	})
}

// resolveRucValidation corre al vencer la latencia. Releer el estado vivo es
// obligatorio: el valor capturado al programar puede estar obsoleto. Si la
// generación no coincide, una edición posterior ya superó esta validación y el
// callback no escribe nada (last-write-wins por estado, no por orden de
// llegada).
func (uc *OnboardingUseCase) resolveRucValidation(s *Session, entryID string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rucGen[entryID] != gen {
		return
	}
	entry := s.findEntry(entryID)
	if entry == nil {
		return
	}
	current := strings.TrimSpace(entry.Ruc)
	if !ruc.IsComplete(current) {
		// El valor cambió bajo nuestros pies; la edición ya limpió el estado.
		return
	}

	result, record := uc.classifyRuc(s, entryID, current)
	entry.ValidationState.Ruc = result

	// En valid/inactive/error_conexion se pueblan los datos del padrón; para
	// error_conexion se muestra la última data conocida durante la caída.
	if record != nil && (result == entity.RucValid || result == entity.RucInactive || result == entity.RucConnectionError) {
		entry.BusinessName = record.BusinessName
		entry.SunatStatus = record.SunatStatus
		entry.SunatCondition = record.SunatCondition
	} else {
		entry.ClearDerived()
	}

	switch {
	case (result == entity.RucValid || result == entity.RucInactive) && hasBothCredentials(entry):
		// Cascada: el RUC quedó utilizable y las credenciales ya están
		// digitadas; se verifican de inmediato sin esperar otra edición.
		entry.ValidationState.Credentials = uc.classifyCredentials(entry.SolUser, entry.SolPassword)
	case result == entity.RucConnectionError:
		// Sin RUC utilizable no hay verificación de credenciales que mantener.
		entry.ValidationState.Credentials = entity.CredNone
	}

	if applyStatus(entry) == entity.StatusConnectionError {
		s.pushIntent(IntentExpandEntry, entry.ID)
		s.pushIntent(IntentFocusEntry, entry.ID)
	}
	prev := s.ValidCompanyCount
	uc.afterCountChange(s, prev, s.recount())
}

// classifyRuc clasifica un RUC completo contra el directorio. Precedencia:
// no encontrado gana a duplicado (el duplicado solo aplica a RUCs que existen
// en el padrón); luego error de conexión, luego inactivo/suspendido.
func (uc *OnboardingUseCase) classifyRuc(s *Session, entryID, value string) (entity.RucValidation, *entity.RucRecord) {
	record, err := uc.directory.LookupRUC(context.Background(), value)
	if err != nil {
		uc.log.Warn().Err(err).Str("ruc", value).Msg("directorio SUNAT no disponible")
		return entity.RucConnectionError, nil
	}
	if record == nil {
		return entity.RucInvalid, nil
	}
	if s.isDuplicateRuc(entryID, value) {
		return entity.RucDuplicate, record
	}
	switch record.Flag {
	case entity.TaxpayerConnectionError:
		return entity.RucConnectionError, record
	case entity.TaxpayerInactive, entity.TaxpayerSuspended:
		return entity.RucInactive, record
	default:
		return entity.RucValid, record
	}
}

func (uc *OnboardingUseCase) scheduleCredentialValidation(s *Session, entryID string, gen uint64) {
	uc.newTimer(uc.cfg.ValidationDelay, func() {
		uc.resolveCredentialValidation(s, entryID, gen)
	})
}

// resolveCredentialValidation misma disciplina que el RUC: lock, chequeo de
// generación y relectura de los valores vivos de usuario/clave.
func (uc *OnboardingUseCase) resolveCredentialValidation(s *Session, entryID string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.credGen[entryID] != gen {
		return
	}
	entry := s.findEntry(entryID)
	if entry == nil {
		return
	}
	if !hasBothCredentials(entry) {
		return
	}

	entry.ValidationState.Credentials = uc.classifyCredentials(entry.SolUser, entry.SolPassword)
	if applyStatus(entry) == entity.StatusConnectionError {
		s.pushIntent(IntentExpandEntry, entry.ID)
		s.pushIntent(IntentFocusEntry, entry.ID)
	}
	prev := s.ValidCompanyCount
	uc.afterCountChange(s, prev, s.recount())
}

// classifyCredentials clasifica el par usuario/clave SOL: usuarios reservados
// simulan caída del servicio; el resto se compara contra el directorio.
func (uc *OnboardingUseCase) classifyCredentials(solUser, solPassword string) entity.CredValidation {
	if uc.directory.IsConnectionErrorUser(strings.TrimSpace(solUser)) {
		return entity.CredConnectionError
	}
	record, err := uc.directory.VerifyCredentials(context.Background(), strings.TrimSpace(solUser), solPassword)
	if err != nil {
		uc.log.Warn().Err(err).Msg("portal SOL no disponible")
		return entity.CredConnectionError
	}
	if record == nil {
		return entity.CredInvalid
	}
	return entity.CredValid
}

// ─────────────────────────────────────────────────────────────────────────────
// Borrador
// ─────────────────────────────────────────────────────────────────────────────

// SaveDraft serializa {companies, validCompanyCount, companyCounter} al
// almacén. Los fallos de escritura se reportan como false, jamás se propagan.
func (uc *OnboardingUseCase) SaveDraft(sessionID string) (*dto.SaveDraftResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	payload := draftPayload{
		Companies:         s.Companies,
		ValidCompanyCount: s.ValidCompanyCount,
		CompanyCounter:    s.CompanyCounter,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		uc.log.Error().Err(err).Msg("serializar borrador")
		return &dto.SaveDraftResponse{Saved: false}, nil
	}
	if err := uc.drafts.Set(draftKeyPrefix+s.OwnerID, string(raw)); err != nil {
		uc.log.Error().Err(err).Msg("guardar borrador")
		return &dto.SaveDraftResponse{Saved: false}, nil
	}
	s.HasDraft = true
	return &dto.SaveDraftResponse{Saved: true}, nil
}

// ClearDraft elimina el borrador; es idempotente.
func (uc *OnboardingUseCase) ClearDraft(sessionID string) (*dto.SessionResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := uc.drafts.Remove(draftKeyPrefix + s.OwnerID); err != nil {
		uc.log.Warn().Err(err).Msg("eliminar borrador")
	}
	s.HasDraft = false
	return uc.snapshotLocked(s), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Finalización
// ─────────────────────────────────────────────────────────────────────────────

// Complete promueve cada entrada verificada al portafolio de empresas, limpia
// el borrador y cierra la sesión. RUCs ya presentes en el portafolio se
// reportan como duplicados, no interrumpen la promoción del resto.
func (uc *OnboardingUseCase) Complete(sessionID string) (*dto.CompleteOnboardingResponse, error) {
	s, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recount() < 1 {
		return nil, domain.ErrNoVerifiedEntries
	}

	out := &dto.CompleteOnboardingResponse{}
	now := time.Now()
	for _, e := range s.Companies {
		if !e.IsValid {
			continue
		}
		existing, err := uc.companies.GetByRUC(e.Ruc)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			out.Duplicates = append(out.Duplicates, e.Ruc)
			continue
		}
		company := &entity.Company{
			ID:             uuid.New().String(),
			Ruc:            e.Ruc,
			BusinessName:   e.BusinessName,
			SunatStatus:    e.SunatStatus,
			SunatCondition: e.SunatCondition,
			TaxRegime:      "Régimen General",
			RiskLevel:      riskLevelFor(e),
			Status:         "active",
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := uc.companies.Create(company); err != nil {
			return nil, err
		}
		out.Promoted = append(out.Promoted, dto.CompanyResponse{
			ID:             company.ID,
			Ruc:            company.Ruc,
			BusinessName:   company.BusinessName,
			SunatStatus:    company.SunatStatus,
			SunatCondition: company.SunatCondition,
			TaxRegime:      company.TaxRegime,
			RiskLevel:      company.RiskLevel,
			Status:         company.Status,
			CreatedAt:      company.CreatedAt,
			UpdatedAt:      company.UpdatedAt,
		})
	}

	if err := uc.drafts.Remove(draftKeyPrefix + s.OwnerID); err != nil {
		uc.log.Warn().Err(err).Msg("limpiar borrador al completar")
	}
	s.stopTourTimer()

	uc.mu.Lock()
	delete(uc.sessions, s.ID)
	uc.mu.Unlock()

	uc.log.Info().Str("session", s.ID).Int("promoted", len(out.Promoted)).Msg("onboarding completado")
	return out, nil
}

// riskLevelFor deriva el nivel de riesgo inicial de la empresa promovida.
// Contribuyente inactivo/suspendido → alto; condición NO HABIDO → medio.
func riskLevelFor(e *entity.CompanyEntry) string {
	if e.ValidationState.Ruc == entity.RucInactive {
		return entity.RiskHigh
	}
	if strings.EqualFold(strings.TrimSpace(e.SunatCondition), "NO HABIDO") {
		return entity.RiskMedium
	}
	return entity.RiskLow
}

// ─────────────────────────────────────────────────────────────────────────────
// Snapshots
// ─────────────────────────────────────────────────────────────────────────────

func (uc *OnboardingUseCase) snapshot(s *Session) *dto.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uc.snapshotLocked(s)
}

func (uc *OnboardingUseCase) snapshotLocked(s *Session) *dto.SessionResponse {
	companies := make([]dto.CompanyEntryResponse, 0, len(s.Companies))
	for _, c := range s.Companies {
		companies = append(companies, dto.CompanyEntryResponse{
			ID:              c.ID,
			Ruc:             c.Ruc,
			BusinessName:    c.BusinessName,
			SunatStatus:     c.SunatStatus,
			SunatCondition:  c.SunatCondition,
			SolUser:         c.SolUser,
			SolPassword:     c.SolPassword,
			Status:          c.Status,
			IsValid:         c.IsValid,
			Expanded:        c.Expanded,
			ValidationState: c.ValidationState,
		})
	}
	return &dto.SessionResponse{
		SessionID:         s.ID,
		Companies:         companies,
		ValidCompanyCount: s.ValidCompanyCount,
		CompanyCounter:    s.CompanyCounter,
		HasDraft:          s.HasDraft,
		Tour: dto.TourStateResponse{
			Active:  s.Tour.Active,
			Step:    s.Tour.Step,
			Skipped: s.Tour.Skipped,
			Shown:   s.Tour.Shown,
		},
		Intents: s.drainIntents(),
	}
}
