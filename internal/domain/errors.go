package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los resultados de validación de RUC/credenciales NO son errores: son valores
// terminales del estado de la entrada (ver entity.RucValidation).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrSessionNotFound    = errors.New("sesión de onboarding no encontrada")
	ErrNoVerifiedEntries  = errors.New("no hay empresas verificadas para completar el onboarding")
)
