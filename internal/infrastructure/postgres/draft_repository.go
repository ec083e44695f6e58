package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucatax/luca-api/internal/domain/repository"
)

// Asegura que DraftRepo implementa repository.DraftStore.
var _ repository.DraftStore = (*DraftRepo)(nil)

// DraftRepo almacén clave-valor de borradores sobre PostgreSQL. El valor es el
// blob JSON del snapshot; no hay esquema más allá de (key, value).
type DraftRepo struct {
	pool *pgxpool.Pool
}

// NewDraftRepository construye el adaptador de borradores.
func NewDraftRepository(pool *pgxpool.Pool) *DraftRepo {
	return &DraftRepo{pool: pool}
}

// Get devuelve el valor y true si la clave existe.
func (r *DraftRepo) Get(key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(context.Background(),
		`SELECT value FROM onboarding_drafts WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if isNoRows(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get draft: %w", err)
	}
	return value, true, nil
}

// Set guarda o reemplaza el valor bajo la clave.
func (r *DraftRepo) Set(key, value string) error {
	query := `
		INSERT INTO onboarding_drafts (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.pool.Exec(context.Background(), query, key, value, time.Now()); err != nil {
		return fmt.Errorf("set draft: %w", err)
	}
	return nil
}

// Remove elimina la clave; es idempotente.
func (r *DraftRepo) Remove(key string) error {
	if _, err := r.pool.Exec(context.Background(),
		`DELETE FROM onboarding_drafts WHERE key = $1`, key); err != nil {
		return fmt.Errorf("remove draft: %w", err)
	}
	return nil
}
