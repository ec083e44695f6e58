package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucatax/luca-api/internal/application/dto"
	"github.com/lucatax/luca-api/internal/domain/entity"
	"github.com/lucatax/luca-api/internal/domain/repository"
)

const maxDeadlines = 20 // tope del widget de vencimientos

// Nombres de mes para la etiqueta del período (es-PE).
var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Setiembre", "Octubre", "Noviembre", "Diciembre",
}

// DashboardUseCase arma el resumen de cumplimiento del portafolio.
//
// Fuente de datos: CompanyRepository y ObligationRepository (consultas
// read-only); las agregaciones corren en paralelo.
type DashboardUseCase struct {
	companyRepo    repository.CompanyRepository
	obligationRepo repository.ObligationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(companyRepo repository.CompanyRepository, obligationRepo repository.ObligationRepository) *DashboardUseCase {
	return &DashboardUseCase{companyRepo: companyRepo, obligationRepo: obligationRepo}
}

// GetSummary construye el DashboardSummaryDTO del mes en curso.
//
// Cuatro consultas en paralelo:
//  1. Count/CountVerified       → empresas del portafolio
//  2. CountByStatus(pending)    → obligaciones pendientes
//  3. CountByStatus(overdue)+CountByStatus(critical) → vencidas
//  4. AmountDueBetween(mes)     → monto a pagar del mes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	type companiesResult struct {
		total, verified int
		err             error
	}
	type countResult struct {
		n   int
		err error
	}
	type amountResult struct {
		total decimal.Decimal
		err   error
	}

	companiesCh := make(chan companiesResult, 1)
	pendingCh := make(chan countResult, 1)
	overdueCh := make(chan countResult, 1)
	amountCh := make(chan amountResult, 1)

	go func() {
		total, err := uc.companyRepo.Count()
		if err != nil {
			companiesCh <- companiesResult{err: err}
			return
		}
		verified, err := uc.companyRepo.CountVerified()
		companiesCh <- companiesResult{total: total, verified: verified, err: err}
	}()
	go func() {
		n, err := uc.obligationRepo.CountByStatus(ctx, entity.ObligationPending)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		overdue, err := uc.obligationRepo.CountByStatus(ctx, entity.ObligationOverdue)
		if err != nil {
			overdueCh <- countResult{err: err}
			return
		}
		critical, err := uc.obligationRepo.CountByStatus(ctx, entity.ObligationCritical)
		overdueCh <- countResult{n: overdue + critical, err: err}
	}()
	go func() {
		amount, err := uc.obligationRepo.AmountDueBetween(ctx, monthStart, monthEnd)
		amountCh <- amountResult{total: amount, err: err}
	}()

	companies := <-companiesCh
	pending := <-pendingCh
	overdue := <-overdueCh
	amount := <-amountCh

	if companies.err != nil {
		return nil, fmt.Errorf("dashboard: empresas: %w", companies.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: obligaciones pendientes: %w", pending.err)
	}
	if overdue.err != nil {
		return nil, fmt.Errorf("dashboard: obligaciones vencidas: %w", overdue.err)
	}
	if amount.err != nil {
		return nil, fmt.Errorf("dashboard: monto del mes: %w", amount.err)
	}

	return &dto.DashboardSummaryDTO{
		TotalCompanies:     companies.total,
		VerifiedCompanies:  companies.verified,
		PendingObligations: pending.n,
		OverdueObligations: overdue.n,
		AmountDueThisMonth: amount.total,
		DateLabel:          fmt.Sprintf("%s %d", monthNames[now.Month()-1], now.Year()),
	}, nil
}

// GetDeadlines obligaciones que vencen dentro de los próximos días indicados.
func (uc *DashboardUseCase) GetDeadlines(ctx context.Context, days int) (*dto.DeadlinesResponse, error) {
	if days <= 0 {
		days = 30
	}
	window := time.Duration(days) * 24 * time.Hour
	list, err := uc.obligationRepo.UpcomingDeadlines(ctx, time.Now(), window, maxDeadlines)
	if err != nil {
		return nil, fmt.Errorf("dashboard: vencimientos: %w", err)
	}
	items := make([]dto.DeadlineDTO, 0, len(list))
	for _, ob := range list {
		items = append(items, dto.DeadlineDTO{
			ObligationID: ob.ID,
			CompanyID:    ob.CompanyID,
			Type:         ob.Type,
			Period:       ob.Period,
			DueDate:      ob.DueDate,
			Status:       ob.Status,
			Amount:       ob.Amount,
		})
	}
	return &dto.DeadlinesResponse{Items: items, Days: days}, nil
}
