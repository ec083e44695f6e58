package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucatax/luca-api/internal/domain/entity"
)

// La escalera de prioridades del estado global, caso por caso. El estado es
// función pura de los sub-estados más el contenido de los campos; estos casos
// fijan el orden de precedencia.
func TestDeriveStatus_EscaleraDePrioridades(t *testing.T) {
	casos := []struct {
		nombre     string
		entry      entity.CompanyEntry
		wantStatus entity.EntryStatus
		wantValid  bool
	}{
		{
			nombre:     "entrada vacía es incompleta",
			entry:      entity.CompanyEntry{},
			wantStatus: entity.StatusIncomplete,
		},
		{
			nombre: "RUC validando domina sobre todo",
			entry: entity.CompanyEntry{
				Ruc:             "20123456789",
				ValidationState: entity.ValidationState{Ruc: entity.RucValidating},
			},
			wantStatus: entity.StatusValidating,
		},
		{
			nombre: "credenciales validando también dominan",
			entry: entity.CompanyEntry{
				Ruc: "20123456789",
				ValidationState: entity.ValidationState{
					Ruc:         entity.RucValid,
					Credentials: entity.CredValidating,
				},
			},
			wantStatus: entity.StatusValidating,
		},
		{
			nombre: "error de conexión en RUC gana a RUC inválido",
			entry: entity.CompanyEntry{
				Ruc:             "20555555555",
				ValidationState: entity.ValidationState{Ruc: entity.RucConnectionError},
			},
			wantStatus: entity.StatusConnectionError,
		},
		{
			nombre: "error de conexión en credenciales",
			entry: entity.CompanyEntry{
				Ruc: "20123456789",
				ValidationState: entity.ValidationState{
					Ruc:         entity.RucValid,
					Credentials: entity.CredConnectionError,
				},
			},
			wantStatus: entity.StatusConnectionError,
		},
		{
			nombre: "RUC inválido",
			entry: entity.CompanyEntry{
				Ruc:             "20999999999",
				ValidationState: entity.ValidationState{Ruc: entity.RucInvalid},
			},
			wantStatus: entity.StatusInvalid,
		},
		{
			nombre: "RUC duplicado en la lista",
			entry: entity.CompanyEntry{
				Ruc:             "20123456789",
				ValidationState: entity.ValidationState{Ruc: entity.RucDuplicate},
			},
			wantStatus: entity.StatusInvalid,
		},
		{
			nombre:     "RUC a medio digitar no es válido",
			entry:      entity.CompanyEntry{Ruc: "2012345"},
			wantStatus: entity.StatusInvalid,
		},
		{
			nombre:     "RUC con dígitos de más no es válido",
			entry:      entity.CompanyEntry{Ruc: "201234567890"},
			wantStatus: entity.StatusInvalid,
		},
		{
			nombre:     "RUC con caracteres no numéricos no es válido",
			entry:      entity.CompanyEntry{Ruc: "2012345678X"},
			wantStatus: entity.StatusInvalid,
		},
		{
			nombre: "credenciales incorrectas",
			entry: entity.CompanyEntry{
				Ruc: "20123456789",
				ValidationState: entity.ValidationState{
					Ruc:         entity.RucValid,
					Credentials: entity.CredInvalid,
				},
			},
			wantStatus: entity.StatusInvalid,
		},
		{
			nombre: "RUC válido + credenciales válidas = verificada",
			entry: entity.CompanyEntry{
				Ruc: "20123456789",
				ValidationState: entity.ValidationState{
					Ruc:         entity.RucValid,
					Credentials: entity.CredValid,
				},
			},
			wantStatus: entity.StatusVerified,
			wantValid:  true,
		},
		{
			nombre: "contribuyente inactivo con credenciales válidas también verifica",
			entry: entity.CompanyEntry{
				Ruc: "20111111111",
				ValidationState: entity.ValidationState{
					Ruc:         entity.RucInactive,
					Credentials: entity.CredValid,
				},
			},
			wantStatus: entity.StatusVerified,
			wantValid:  true,
		},
		{
			nombre: "RUC válido sin credenciales sigue incompleta",
			entry: entity.CompanyEntry{
				Ruc:             "20123456789",
				ValidationState: entity.ValidationState{Ruc: entity.RucValid},
			},
			wantStatus: entity.StatusIncomplete,
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			e := c.entry
			status, isValid := deriveStatus(&e)
			assert.Equal(t, c.wantStatus, status)
			assert.Equal(t, c.wantValid, isValid)
		})
	}
}

// applyStatus aplica además efectos de presentación: expandir en error de
// conexión, colapsar al verificar.
func TestApplyStatus_EfectosDePresentacion(t *testing.T) {
	e := &entity.CompanyEntry{
		Ruc:             "20555555555",
		ValidationState: entity.ValidationState{Ruc: entity.RucConnectionError},
	}
	applyStatus(e)
	assert.True(t, e.Expanded, "un error de conexión expande la entrada")

	e = &entity.CompanyEntry{
		Ruc:      "20123456789",
		Expanded: true,
		ValidationState: entity.ValidationState{
			Ruc:         entity.RucValid,
			Credentials: entity.CredValid,
		},
	}
	applyStatus(e)
	assert.False(t, e.Expanded, "una entrada verificada se colapsa")
	assert.True(t, e.IsValid)
}
