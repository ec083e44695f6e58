package entity

import "time"

// Niveles de riesgo de cumplimiento asignados al promover una empresa.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Company empresa ya vinculada al portafolio del estudio contable. Nace de una
// entrada "verificada" del asistente de onboarding.
type Company struct {
	ID             string
	Ruc            string
	BusinessName   string
	SunatStatus    string
	SunatCondition string
	TaxRegime      string // ej. "Régimen General", "RER", "RUS"
	RiskLevel      string // low, medium, high
	Status         string // active, inactive, suspended
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
