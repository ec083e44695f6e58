// Package ports define los contratos hacia servicios externos que consumen
// los casos de uso. Las implementaciones viven en infrastructure.
package ports

import (
	"context"

	"github.com/lucatax/luca-api/internal/domain/entity"
)

// CompanyDirectory frontera hacia el registro de contribuyentes y el portal
// SOL de SUNAT. La implementación de referencia es un padrón estático con
// latencia simulada; una real llamaría a la API de SUNAT sin tocar la lógica
// de derivación de estados.
type CompanyDirectory interface {
	// LookupRUC devuelve el registro del contribuyente o nil si el RUC no existe.
	LookupRUC(ctx context.Context, ruc string) (*entity.RucRecord, error)
	// VerifyCredentials devuelve el registro si el par usuario/clave SOL es
	// correcto, nil si no. Ciertos usuarios reservados simulan una caída del
	// servicio y se reportan vía el flag del registro, no como error de Go.
	VerifyCredentials(ctx context.Context, solUser, solPassword string) (*entity.CredentialRecord, error)
	// IsConnectionErrorUser informa si el usuario SOL pertenece a la lista
	// reservada que simula errores de conexión.
	IsConnectionErrorUser(solUser string) bool
}
