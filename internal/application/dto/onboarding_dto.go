package dto

import "github.com/lucatax/luca-api/internal/domain/entity"

// UpdateFieldRequest cambio de un campo de una entrada del asistente.
// Field: "ruc" | "solUser" | "solPassword".
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// CompanyEntryResponse una fila del asistente tal como la pinta la UI.
type CompanyEntryResponse struct {
	ID              string                 `json:"id"`
	Ruc             string                 `json:"ruc"`
	BusinessName    string                 `json:"businessName"`
	SunatStatus     string                 `json:"sunatStatus"`
	SunatCondition  string                 `json:"sunatCondition"`
	SolUser         string                 `json:"solUser"`
	SolPassword     string                 `json:"solPassword"`
	Status          entity.EntryStatus     `json:"status"`
	IsValid         bool                   `json:"isValid"`
	Expanded        bool                   `json:"expanded"`
	ValidationState entity.ValidationState `json:"validationState"`
}

// TourStateResponse estado del tour de bienvenida (3 pasos).
type TourStateResponse struct {
	Active  bool `json:"active"`
	Step    int  `json:"step"`
	Skipped bool `json:"skipped"`
	Shown   bool `json:"shown"`
}

// IntentResponse efecto de UI que el núcleo pide ejecutar a la capa de
// presentación (scroll, focus). El núcleo no toca el DOM: solo emite intents.
type IntentResponse struct {
	Kind    string `json:"kind"` // scroll_bottom | focus_entry | expand_entry
	EntryID string `json:"entryId,omitempty"`
}

// SessionResponse snapshot completo de la sesión de onboarding.
type SessionResponse struct {
	SessionID         string                 `json:"sessionId"`
	Companies         []CompanyEntryResponse `json:"companies"`
	ValidCompanyCount int                    `json:"validCompanyCount"`
	CompanyCounter    int                    `json:"companyCounter"`
	HasDraft          bool                   `json:"hasDraft"`
	Tour              TourStateResponse      `json:"tour"`
	Intents           []IntentResponse       `json:"intents"`
}

// SaveDraftResponse resultado de guardar el borrador.
type SaveDraftResponse struct {
	Saved bool `json:"saved"`
}

// CompleteOnboardingResponse resultado de promover las entradas verificadas.
type CompleteOnboardingResponse struct {
	Promoted   []CompanyResponse `json:"promoted"`
	Duplicates []string          `json:"duplicates,omitempty"` // RUCs ya presentes en el portafolio
}
