package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucatax/luca-api/internal/domain/entity"
)

// ObligationRepository puerto de persistencia y consultas de obligaciones
// tributarias. Las agregaciones se resuelven en la DB, no en memoria.
type ObligationRepository interface {
	Create(ob *entity.Obligation) error
	ListByCompany(companyID string) ([]*entity.Obligation, error)
	// UpcomingDeadlines obligaciones no pagadas con vencimiento dentro de la
	// ventana [now, now+window], ordenadas por fecha de vencimiento.
	UpcomingDeadlines(ctx context.Context, now time.Time, window time.Duration, limit int) ([]*entity.Obligation, error)
	// CountByStatus número de obligaciones por estado (pending, overdue, critical).
	CountByStatus(ctx context.Context, status string) (int, error)
	// AmountDueBetween suma de montos de obligaciones no pagadas que vencen en el rango.
	AmountDueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
