package repository

import "github.com/lucatax/luca-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByRUC(ruc string) (*entity.Company, error)
	Update(company *entity.Company) error
	// List devuelve empresas paginadas; query filtra por RUC o razón social
	// (la comparación ignora mayúsculas y tildes, eso lo resuelve el caso de uso).
	List(limit, offset int) ([]*entity.Company, error)
	Delete(id string) error
	Count() (int, error)
	CountVerified() (int, error)
}
