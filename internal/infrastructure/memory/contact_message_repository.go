package memory

import (
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.ContactMessageRepository = (*ContactMessageRepo)(nil)

// ContactMessageRepo implementación en memoria del puerto ContactMessageRepository.
type ContactMessageRepo struct {
	store *Store
}

// NewContactMessageRepository construye el adaptador sobre el store compartido.
func NewContactMessageRepository(store *Store) *ContactMessageRepo {
	return &ContactMessageRepo{store: store}
}

// Create inserta un mensaje de contacto.
func (r *ContactMessageRepo) Create(message *entity.ContactMessage) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *message
	s.contactMessages[clone.ID] = &clone
	return nil
}
