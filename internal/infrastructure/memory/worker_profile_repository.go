package memory

import (
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.WorkerProfileRepository = (*WorkerProfileRepo)(nil)

// WorkerProfileRepo implementación en memoria del puerto WorkerProfileRepository.
type WorkerProfileRepo struct {
	store *Store
}

// NewWorkerProfileRepository construye el adaptador sobre el store compartido.
func NewWorkerProfileRepository(store *Store) *WorkerProfileRepo {
	return &WorkerProfileRepo{store: store}
}

// Create inserta un perfil de trabajador.
func (r *WorkerProfileRepo) Create(profile *entity.WorkerProfile) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *profile
	s.workerProfiles[clone.ID] = &clone
	return nil
}

// GetByUserID devuelve el perfil del usuario o nil.
func (r *WorkerProfileRepo) GetByUserID(userID string) (*entity.WorkerProfile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.workerProfileByUserLocked(userID)
	if p == nil {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

// ListWithUsers une cada perfil con su User de rol worker y aplica los filtros
// conjuntivos. Perfiles cuyo usuario no existe o no es worker se omiten en
// silencio. El orden es el de iteración del mapa (sin garantía).
func (r *WorkerProfileRepo) ListWithUsers(filters repository.WorkerFilters) ([]*entity.WorkerWithProfile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	workers := make([]*entity.WorkerWithProfile, 0)
	for _, profile := range s.workerProfiles {
		user, ok := s.users[profile.UserID]
		if !ok || user.Role != entity.RoleWorker {
			continue
		}
		if filters.Skills != "" && !containsFold(profile.Skills, filters.Skills) {
			continue
		}
		if filters.Location != "" && !containsFold(profile.Location, filters.Location) {
			continue
		}
		if filters.Availability != "" && profile.Availability != filters.Availability {
			continue
		}
		workers = append(workers, &entity.WorkerWithProfile{User: *user, Profile: *profile})
	}
	return workers, nil
}
