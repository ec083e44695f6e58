// Package sunat contiene las implementaciones del directorio de
// contribuyentes y del portal SOL. El adaptador estático reemplaza a la API
// real de SUNAT con data de referencia embebida; la lógica de onboarding no
// distingue uno del otro.
package sunat

import (
	"context"

	"github.com/lucatax/luca-api/internal/application/ports"
	"github.com/lucatax/luca-api/internal/domain/entity"
	"github.com/lucatax/luca-api/pkg/ruc"
)

// Asegura que StaticDirectory implementa el puerto.
var _ ports.CompanyDirectory = (*StaticDirectory)(nil)

// StaticDirectory padrón embebido de contribuyentes y credenciales SOL.
// Las consultas son síncronas; la latencia la simula quien consume el puerto.
type StaticDirectory struct {
	rucs        map[string]entity.RucRecord
	credentials map[credentialKey]entity.CredentialRecord
	errorUsers  map[string]struct{}
}

type credentialKey struct {
	user string
	pass string
}

// NewStaticDirectory construye el directorio con la data de referencia embebida.
func NewStaticDirectory() *StaticDirectory {
	d := &StaticDirectory{
		rucs:        make(map[string]entity.RucRecord, len(fixtureRucs)),
		credentials: make(map[credentialKey]entity.CredentialRecord, len(fixtureCredentials)),
		errorUsers:  make(map[string]struct{}, len(connectionErrorUsers)),
	}
	for _, r := range fixtureRucs {
		d.rucs[r.Ruc] = r
	}
	for _, c := range fixtureCredentials {
		d.credentials[credentialKey{user: c.SolUser, pass: c.SolPassword}] = c
	}
	for _, u := range connectionErrorUsers {
		d.errorUsers[u] = struct{}{}
	}
	return d
}

// LookupRUC devuelve el registro del padrón o nil si el RUC no existe.
func (d *StaticDirectory) LookupRUC(_ context.Context, value string) (*entity.RucRecord, error) {
	record, ok := d.rucs[ruc.Normalize(value)]
	if !ok {
		return nil, nil
	}
	out := record
	return &out, nil
}

// VerifyCredentials busca el par exacto usuario/clave; nil si no coincide.
func (d *StaticDirectory) VerifyCredentials(_ context.Context, solUser, solPassword string) (*entity.CredentialRecord, error) {
	record, ok := d.credentials[credentialKey{user: solUser, pass: solPassword}]
	if !ok {
		return nil, nil
	}
	out := record
	return &out, nil
}

// IsConnectionErrorUser informa si el usuario pertenece a la lista reservada
// que simula caídas del portal.
func (d *StaticDirectory) IsConnectionErrorUser(solUser string) bool {
	_, ok := d.errorUsers[solUser]
	return ok
}
