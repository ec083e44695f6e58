package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del portafolio: empresas vinculadas y carga tributaria del mes.
type DashboardSummaryDTO struct {
	TotalCompanies    int `json:"total_companies"`
	VerifiedCompanies int `json:"verified_companies"`

	PendingObligations int `json:"pending_obligations"`
	OverdueObligations int `json:"overdue_obligations"`

	// Monto total a pagar por obligaciones que vencen en el mes en curso.
	AmountDueThisMonth decimal.Decimal `json:"amount_due_this_month"`

	// Metadatos del período, ej: "Setiembre 2026"
	DateLabel string `json:"date_label"`
}

// DeadlineDTO una obligación próxima a vencer para el widget de vencimientos.
type DeadlineDTO struct {
	ObligationID string          `json:"obligation_id"`
	CompanyID    string          `json:"company_id"`
	Type         string          `json:"type"`
	Period       string          `json:"period"`
	DueDate      time.Time       `json:"due_date"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
}

// DeadlinesResponse respuesta de GET /api/dashboard/deadlines.
type DeadlinesResponse struct {
	Items []DeadlineDTO `json:"items"`
	Days  int           `json:"days"`
}
