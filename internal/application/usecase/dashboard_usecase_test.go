package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucatax/luca-api/internal/domain/entity"
)

// stubObligationRepo agregados fijos para los tests del dashboard.
type stubObligationRepo struct {
	byStatus map[string]int
	amount   decimal.Decimal
	upcoming []*entity.Obligation
}

func (r *stubObligationRepo) Create(ob *entity.Obligation) error { return nil }

func (r *stubObligationRepo) ListByCompany(companyID string) ([]*entity.Obligation, error) {
	return nil, nil
}

func (r *stubObligationRepo) UpcomingDeadlines(_ context.Context, now time.Time, window time.Duration, limit int) ([]*entity.Obligation, error) {
	if len(r.upcoming) > limit {
		return r.upcoming[:limit], nil
	}
	return r.upcoming, nil
}

func (r *stubObligationRepo) CountByStatus(_ context.Context, status string) (int, error) {
	return r.byStatus[status], nil
}

func (r *stubObligationRepo) AmountDueBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.amount, nil
}

func TestGetSummary_AgregaKPIs(t *testing.T) {
	companies := &stubCompanyRepo{companies: []*entity.Company{
		{ID: "1", Ruc: "20123456789"},
		{ID: "2", Ruc: "20987654321"},
	}}
	obligations := &stubObligationRepo{
		byStatus: map[string]int{
			entity.ObligationPending:  4,
			entity.ObligationOverdue:  2,
			entity.ObligationCritical: 1,
		},
		amount: decimal.RequireFromString("12540.50"),
	}
	uc := NewDashboardUseCase(companies, obligations)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalCompanies)
	assert.Equal(t, 4, out.PendingObligations)
	assert.Equal(t, 3, out.OverdueObligations, "vencidas incluye las críticas")
	assert.True(t, out.AmountDueThisMonth.Equal(decimal.RequireFromString("12540.50")))

	now := time.Now()
	assert.Contains(t, out.DateLabel, fmt.Sprintf("%d", now.Year()),
		"la etiqueta del período lleva el año en curso")
}

func TestGetDeadlines_VentanaYLimite(t *testing.T) {
	due := time.Now().Add(72 * time.Hour)
	obligations := &stubObligationRepo{upcoming: []*entity.Obligation{
		{
			ID:        "ob-1",
			CompanyID: "1",
			Type:      "IGV-Renta",
			Period:    "2026-08",
			DueDate:   due,
			Status:    entity.ObligationPending,
			Amount:    decimal.RequireFromString("850.00"),
		},
	}}
	uc := NewDashboardUseCase(&stubCompanyRepo{}, obligations)

	out, err := uc.GetDeadlines(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "ob-1", out.Items[0].ObligationID)
	assert.Equal(t, 30, out.Days)

	// Días fuera de rango caen al default.
	out, err = uc.GetDeadlines(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30, out.Days)
}
