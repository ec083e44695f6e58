package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucatax/luca-api/internal/domain"
	"github.com/lucatax/luca-api/internal/domain/entity"
)

// stubCompanyRepo lista fija en memoria para los tests del caso de uso.
type stubCompanyRepo struct {
	companies []*entity.Company
	deleted   []string
}

func (r *stubCompanyRepo) Create(c *entity.Company) error { return nil }

func (r *stubCompanyRepo) GetByID(id string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubCompanyRepo) GetByRUC(ruc string) (*entity.Company, error) { return nil, nil }
func (r *stubCompanyRepo) Update(c *entity.Company) error               { return nil }

func (r *stubCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return r.companies, nil
}

func (r *stubCompanyRepo) Delete(id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubCompanyRepo) Count() (int, error)         { return len(r.companies), nil }
func (r *stubCompanyRepo) CountVerified() (int, error) { return len(r.companies), nil }

func TestFoldForSearch(t *testing.T) {
	assert.Equal(t, "perez", foldForSearch("PÉREZ"))
	assert.Equal(t, "contrataciones nunez", foldForSearch("  Contrataciones NÚÑEZ "))
	assert.Equal(t, "", foldForSearch("   "))
	assert.Equal(t, "20123456789", foldForSearch("20123456789"))
}

func TestList_FiltraIgnorandoTildes(t *testing.T) {
	repo := &stubCompanyRepo{companies: []*entity.Company{
		{ID: "1", Ruc: "20123456789", BusinessName: "CONSTRUCCIONES PÉREZ S.A.C."},
		{ID: "2", Ruc: "20987654321", BusinessName: "IMPORTACIONES SANTA ROSA E.I.R.L."},
	}}
	uc := NewCompanyUseCase(repo)

	out, err := uc.List("perez", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "1", out.Items[0].ID)

	// También matchea por RUC.
	out, err = uc.List("2098765", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2", out.Items[0].ID)

	// Sin query devuelve todo.
	out, err = uc.List("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestDelete_NoEncontrada(t *testing.T) {
	uc := NewCompanyUseCase(&stubCompanyRepo{})
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Existente(t *testing.T) {
	repo := &stubCompanyRepo{companies: []*entity.Company{{ID: "1", Ruc: "20123456789"}}}
	uc := NewCompanyUseCase(repo)

	require.NoError(t, uc.Delete("1"))
	assert.Equal(t, []string{"1"}, repo.deleted)
}
