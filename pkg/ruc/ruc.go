// Package ruc contiene utilidades de formato para el RUC peruano (SUNAT).
// El RUC es un identificador de 11 dígitos; aquí solo se valida forma, la
// existencia y el estado del contribuyente los decide el directorio SUNAT.
package ruc

import (
	"strings"
	"unicode"
)

// Length longitud de un RUC completo.
const Length = 11

// Normalize elimina espacios, puntos y guiones del RUC ingresado por el usuario.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch r {
		case ' ', '.', '-':
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// IsNumeric informa si la cadena contiene únicamente dígitos.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsComplete informa si el RUC tiene exactamente 11 dígitos numéricos.
// Un RUC incompleto no se valida contra el directorio: mientras el usuario
// escribe, el estado de validación se mantiene limpio.
func IsComplete(s string) bool {
	return len(s) == Length && IsNumeric(s)
}

// IsPartial informa si hay texto de RUC que no forma un RUC completo: a medio
// digitar, con caracteres no numéricos o con dígitos de más. Todo lo no vacío
// que no sea completo cuenta como parcial y la entrada no puede darse por bien
// formada.
func IsPartial(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed != "" && !IsComplete(trimmed)
}
