package memory

import (
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.EmployerProfileRepository = (*EmployerProfileRepo)(nil)

// EmployerProfileRepo implementación en memoria del puerto EmployerProfileRepository.
type EmployerProfileRepo struct {
	store *Store
}

// NewEmployerProfileRepository construye el adaptador sobre el store compartido.
func NewEmployerProfileRepository(store *Store) *EmployerProfileRepo {
	return &EmployerProfileRepo{store: store}
}

// Create inserta un perfil de empleador.
func (r *EmployerProfileRepo) Create(profile *entity.EmployerProfile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *profile
	s.employerProfiles[clone.ID] = &clone
	return nil
}

// GetByUserID devuelve el perfil del usuario o nil.
func (r *EmployerProfileRepo) GetByUserID(userID string) (*entity.EmployerProfile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.employerProfiles {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}
