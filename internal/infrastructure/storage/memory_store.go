// Package storage contiene el almacén clave-valor en memoria para borradores
// y flags del asistente. Replica la semántica del localStorage del navegador:
// best effort, por proceso, sin durabilidad. En producción el mismo puerto lo
// cubre la tabla de PostgreSQL (infrastructure/postgres).
package storage

import (
	"sync"

	"github.com/lucatax/luca-api/internal/domain/repository"
)

// Asegura que MemoryStore implementa el puerto.
var _ repository.DraftStore = (*MemoryStore)(nil)

// MemoryStore mapa protegido por mutex. Seguro para uso concurrente.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore construye un almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get devuelve el valor y true si la clave existe.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set guarda el valor bajo la clave.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Remove elimina la clave; quitar una inexistente no es error.
func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
