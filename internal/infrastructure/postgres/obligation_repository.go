package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lucatax/luca-api/internal/domain/entity"
	"github.com/lucatax/luca-api/internal/domain/repository"
)

// Asegura que ObligationRepo implementa repository.ObligationRepository.
var _ repository.ObligationRepository = (*ObligationRepo)(nil)

// ObligationRepo implementación del puerto ObligationRepository sobre
// PostgreSQL. Las agregaciones (conteos, sumas) se resuelven en la DB.
type ObligationRepo struct {
	pool *pgxpool.Pool
}

// NewObligationRepository construye el adaptador de persistencia de obligaciones.
func NewObligationRepository(pool *pgxpool.Pool) *ObligationRepo {
	return &ObligationRepo{pool: pool}
}

const obligationColumns = `id, company_id, type, period, due_date, status, amount, created_at, updated_at`

// Create persiste una obligación tributaria.
func (r *ObligationRepo) Create(ob *entity.Obligation) error {
	query := `
		INSERT INTO obligations (` + obligationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		ob.ID, ob.CompanyID, ob.Type, ob.Period, ob.DueDate,
		ob.Status, ob.Amount, ob.CreatedAt, ob.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert obligation: %w", err)
	}
	return nil
}

// ListByCompany obligaciones de una empresa, próximas primero.
func (r *ObligationRepo) ListByCompany(companyID string) ([]*entity.Obligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM obligations WHERE company_id = $1 ORDER BY due_date ASC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list obligations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Obligation
	for rows.Next() {
		var ob entity.Obligation
		if err := rows.Scan(
			&ob.ID, &ob.CompanyID, &ob.Type, &ob.Period, &ob.DueDate,
			&ob.Status, &ob.Amount, &ob.CreatedAt, &ob.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan obligation: %w", err)
		}
		list = append(list, &ob)
	}
	return list, rows.Err()
}

// UpcomingDeadlines obligaciones sin pagar que vencen dentro de la ventana.
func (r *ObligationRepo) UpcomingDeadlines(ctx context.Context, now time.Time, window time.Duration, limit int) ([]*entity.Obligation, error) {
	query := `
		SELECT ` + obligationColumns + `
		  FROM obligations
		 WHERE status IN ('pending', 'overdue', 'critical')
		   AND due_date BETWEEN $1 AND $2
		 ORDER BY due_date ASC
		 LIMIT $3`
	rows, err := r.pool.Query(ctx, query, now, now.Add(window), limit)
	if err != nil {
		return nil, fmt.Errorf("upcoming deadlines: %w", err)
	}
	defer rows.Close()

	var list []*entity.Obligation
	for rows.Next() {
		var ob entity.Obligation
		if err := rows.Scan(
			&ob.ID, &ob.CompanyID, &ob.Type, &ob.Period, &ob.DueDate,
			&ob.Status, &ob.Amount, &ob.CreatedAt, &ob.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan deadline: %w", err)
		}
		list = append(list, &ob)
	}
	return list, rows.Err()
}

// CountByStatus número de obligaciones en el estado dado.
func (r *ObligationRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	query := `SELECT count(*) FROM obligations WHERE status = $1`
	if err := r.pool.QueryRow(ctx, query, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count obligations %s: %w", status, err)
	}
	return n, nil
}

// AmountDueBetween suma de montos sin pagar que vencen en el rango.
// COALESCE evita NULL cuando no hay filas; el codec del pool entrega decimal.
func (r *ObligationRepo) AmountDueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(amount), 0)
		  FROM obligations
		 WHERE status IN ('pending', 'overdue', 'critical')
		   AND due_date BETWEEN $1 AND $2`
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("amount due: %w", err)
	}
	return total, nil
}
