package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucatax/luca-api/internal/domain/entity"
	"github.com/lucatax/luca-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

const companyColumns = `id, ruc, business_name, sunat_status, sunat_condition, tax_regime, risk_level, status, created_at, updated_at`

// Create persiste una nueva empresa del portafolio.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Ruc, company.BusinessName,
		company.SunatStatus, company.SunatCondition,
		company.TaxRegime, company.RiskLevel, company.Status,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id))
}

// GetByRUC obtiene una empresa por RUC.
func (r *CompanyRepo) GetByRUC(rucValue string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE ruc = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, rucValue))
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		   SET business_name = $2, sunat_status = $3, sunat_condition = $4,
		       tax_regime = $5, risk_level = $6, status = $7, updated_at = $8
		 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.BusinessName, company.SunatStatus, company.SunatCondition,
		company.TaxRegime, company.RiskLevel, company.Status, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas con paginación, más recientes primero.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Ruc, &c.BusinessName, &c.SunatStatus, &c.SunatCondition,
			&c.TaxRegime, &c.RiskLevel, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// Count número total de empresas del portafolio.
func (r *CompanyRepo) Count() (int, error) {
	var n int
	if err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM companies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return n, nil
}

// CountVerified número de empresas activas (vinculación vigente).
func (r *CompanyRepo) CountVerified() (int, error) {
	var n int
	query := `SELECT count(*) FROM companies WHERE status = 'active'`
	if err := r.pool.QueryRow(context.Background(), query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count verified companies: %w", err)
	}
	return n, nil
}

func (r *CompanyRepo) scanOne(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Ruc, &c.BusinessName, &c.SunatStatus, &c.SunatCondition,
		&c.TaxRegime, &c.RiskLevel, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
