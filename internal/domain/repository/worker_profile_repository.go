package repository

import "github.com/laborconnect/laborconnect-api/internal/domain/entity"

// WorkerFilters filtros conjuntivos para el directorio de trabajadores.
// Skills y Location son substring case-insensitive; Availability es igualdad exacta.
type WorkerFilters struct {
	Skills       string
	Location     string
	Availability string
}

// WorkerProfileRepository puerto de persistencia para WorkerProfile,
// incluida la consulta compuesta perfil+usuario del directorio.
type WorkerProfileRepository interface {
	Create(profile *entity.WorkerProfile) error
	GetByUserID(userID string) (*entity.WorkerProfile, error)
	// ListWithUsers une cada perfil con su User de rol worker; los perfiles sin
	// usuario resoluble se omiten en silencio. Sin garantía de orden.
	ListWithUsers(filters WorkerFilters) ([]*entity.WorkerWithProfile, error)
}
