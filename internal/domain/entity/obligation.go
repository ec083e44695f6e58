package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una obligación tributaria.
const (
	ObligationPending  = "pending"
	ObligationOverdue  = "overdue"
	ObligationCritical = "critical"
)

// Obligation una obligación tributaria de una empresa del portafolio
// (declaración mensual, PLAME, etc.) con su monto estimado.
type Obligation struct {
	ID        string
	CompanyID string
	Type      string // ej. "IGV-Renta", "PLAME", "AFP"
	Period    string // periodo tributario, formato "2026-08"
	DueDate   time.Time
	Status    string // pending, overdue, critical
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
