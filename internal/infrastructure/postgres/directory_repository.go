package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucatax/luca-api/internal/application/ports"
	"github.com/lucatax/luca-api/internal/domain/entity"
	"github.com/lucatax/luca-api/pkg/ruc"
)

// Asegura que DirectoryRepo implementa el puerto del directorio.
var _ ports.CompanyDirectory = (*DirectoryRepo)(nil)

// DirectoryRepo directorio SUNAT servido desde tablas locales (padrón
// replicado). Alternativa al padrón estático embebido cuando se cuenta con un
// volcado real del registro de contribuyentes.
type DirectoryRepo struct {
	pool *pgxpool.Pool
}

// NewDirectoryRepository construye el adaptador del padrón en PostgreSQL.
func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepo {
	return &DirectoryRepo{pool: pool}
}

// LookupRUC consulta el padrón replicado; nil si el RUC no existe.
func (r *DirectoryRepo) LookupRUC(ctx context.Context, value string) (*entity.RucRecord, error) {
	query := `
		SELECT ruc, business_name, sunat_status, sunat_condition, flag
		  FROM sunat_padron WHERE ruc = $1`
	var rec entity.RucRecord
	err := r.pool.QueryRow(ctx, query, ruc.Normalize(value)).Scan(
		&rec.Ruc, &rec.BusinessName, &rec.SunatStatus, &rec.SunatCondition, &rec.Flag,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup ruc: %w", err)
	}
	return &rec, nil
}

// VerifyCredentials busca el par exacto usuario/clave; nil si no coincide.
func (r *DirectoryRepo) VerifyCredentials(ctx context.Context, solUser, solPassword string) (*entity.CredentialRecord, error) {
	query := `
		SELECT sol_user, sol_password
		  FROM sol_credentials WHERE sol_user = $1 AND sol_password = $2`
	var rec entity.CredentialRecord
	err := r.pool.QueryRow(ctx, query, solUser, solPassword).Scan(&rec.SolUser, &rec.SolPassword)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	return &rec, nil
}

// IsConnectionErrorUser consulta la lista reservada de usuarios que simulan
// caídas del portal.
func (r *DirectoryRepo) IsConnectionErrorUser(solUser string) bool {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM sol_error_users WHERE sol_user = $1)`, solUser).Scan(&exists)
	if err != nil {
		return false
	}
	return exists
}
