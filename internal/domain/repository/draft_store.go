package repository

// DraftStore capacidad mínima de clave-valor para borradores del asistente y
// flags del tour. Equivale al localStorage del navegador: snapshot de
// conveniencia, no un contrato de durabilidad.
type DraftStore interface {
	// Get devuelve el valor y true si la clave existe.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Remove es idempotente: quitar una clave inexistente no es error.
	Remove(key string) error
}
