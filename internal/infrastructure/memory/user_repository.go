package memory

import (
	"github.com/laborconnect/laborconnect-api/internal/domain"
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador sobre el store compartido.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create inserta un usuario. Devuelve ErrEmailAlreadyExists si otro usuario
// tiene exactamente el mismo email (match case-sensitive).
func (r *UserRepo) Create(user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	clone := *user
	s.users[clone.ID] = &clone
	return nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

// GetByEmail busca por email con match exacto; nil si no hay coincidencia.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}
