package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/lucatax/luca-api/internal/application/dto"
	"github.com/lucatax/luca-api/internal/domain"
	"github.com/lucatax/luca-api/internal/domain/entity"
	"github.com/lucatax/luca-api/internal/domain/repository"
)

// CompanyUseCase consultas y mantenimiento del portafolio de empresas.
// El alta no pasa por aquí: las empresas nacen de la promoción del onboarding.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación. Si query no está vacío, filtra por RUC
// o razón social ignorando mayúsculas y tildes ("PÉREZ" matchea "perez").
func (uc *CompanyUseCase) List(query string, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	needle := foldForSearch(query)
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		if needle != "" &&
			!strings.Contains(foldForSearch(c.BusinessName), needle) &&
			!strings.Contains(c.Ruc, needle) {
			continue
		}
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete desvincula una empresa del portafolio.
func (uc *CompanyUseCase) Delete(id string) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// diacriticsRemover descompone (NFD), quita las marcas combinantes y
// recompone (NFC). Se comparte entre llamadas; Transformer es stateless aquí.
var diacriticsRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldForSearch normaliza un texto para búsqueda: minúsculas y sin tildes.
func foldForSearch(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(diacriticsRemover, s)
	if err != nil {
		return s
	}
	return folded
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		Ruc:            c.Ruc,
		BusinessName:   c.BusinessName,
		SunatStatus:    c.SunatStatus,
		SunatCondition: c.SunatCondition,
		TaxRegime:      c.TaxRegime,
		RiskLevel:      c.RiskLevel,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
