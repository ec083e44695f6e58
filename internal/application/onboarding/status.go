package onboarding

import (
	"strings"

	"github.com/lucatax/luca-api/internal/domain/entity"
	"github.com/lucatax/luca-api/pkg/ruc"
)

// deriveStatus calcula el estado global de una entrada como función pura de:
// longitud del RUC, sub-estado de RUC, campos de credenciales y sub-estado de
// credenciales. Ningún otro insumo participa; la escalera de prioridades va de
// mayor a menor:
//
//  1. cualquier sub-estado en curso           → validando
//  2. error de conexión en RUC o credenciales → error_conexion
//  3. RUC inválido/duplicado o a medio digitar → no_valido
//  4. credenciales incorrectas                → no_valido
//  5. RUC válido o inactivo + credenciales ok → verificada
//  6. resto (campos vacíos, sin errores)      → incompleto
//
// Las empresas inactivas/suspendidas con credenciales correctas sí se
// verifican: regla de negocio, se vinculan con una advertencia.
func deriveStatus(e *entity.CompanyEntry) (entity.EntryStatus, bool) {
	rucVal := e.ValidationState.Ruc
	credVal := e.ValidationState.Credentials

	if rucVal == entity.RucValidating || credVal == entity.CredValidating {
		return entity.StatusValidating, false
	}

	if rucVal == entity.RucConnectionError || credVal == entity.CredConnectionError {
		return entity.StatusConnectionError, false
	}

	rucText := strings.TrimSpace(e.Ruc)
	if rucVal == entity.RucInvalid || rucVal == entity.RucDuplicate || ruc.IsPartial(rucText) {
		return entity.StatusInvalid, false
	}

	if credVal == entity.CredInvalid {
		return entity.StatusInvalid, false
	}

	if (rucVal == entity.RucValid || rucVal == entity.RucInactive) && credVal == entity.CredValid {
		return entity.StatusVerified, true
	}

	return entity.StatusIncomplete, false
}

// applyStatus recalcula status/isValid y aplica los efectos de presentación
// asociados: un error de conexión expande la entrada para que el usuario lo
// vea; una verificación la colapsa. Devuelve el estado resultante.
func applyStatus(e *entity.CompanyEntry) entity.EntryStatus {
	status, isValid := deriveStatus(e)
	e.Status = status
	e.IsValid = isValid

	switch status {
	case entity.StatusConnectionError:
		e.Expanded = true
	case entity.StatusVerified:
		e.Expanded = false
	}
	return status
}

// hasBothCredentials informa si ambos campos SOL tienen contenido.
func hasBothCredentials(e *entity.CompanyEntry) bool {
	return strings.TrimSpace(e.SolUser) != "" && strings.TrimSpace(e.SolPassword) != ""
}
