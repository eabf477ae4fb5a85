package repository

import "github.com/laborconnect/laborconnect-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los lookups ausentes devuelven (nil, nil), no error.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
