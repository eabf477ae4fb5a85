package repository

import "github.com/laborconnect/laborconnect-api/internal/domain/entity"

// EmployerProfileRepository puerto de persistencia para EmployerProfile.
type EmployerProfileRepository interface {
	Create(profile *entity.EmployerProfile) error
	GetByUserID(userID string) (*entity.EmployerProfile, error)
}
