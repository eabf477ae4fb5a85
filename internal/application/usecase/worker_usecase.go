package usecase

import (
	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

// WorkerUseCase consultas del directorio de trabajadores.
type WorkerUseCase struct {
	workerRepo repository.WorkerProfileRepository
	userRepo   repository.UserRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(workerRepo repository.WorkerProfileRepository, userRepo repository.UserRepository) *WorkerUseCase {
	return &WorkerUseCase{workerRepo: workerRepo, userRepo: userRepo}
}

// Search devuelve trabajadores con perfil aplicando los filtros conjuntivos.
// Filtros vacíos no restringen.
func (uc *WorkerUseCase) Search(filters repository.WorkerFilters) ([]dto.WorkerResponse, error) {
	workers, err := uc.workerRepo.ListWithUsers(filters)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, toWorkerResponse(w))
	}
	return out, nil
}

// GetByUserID devuelve un trabajador con su perfil, o nil si el usuario no
// existe, no es worker o no tiene perfil.
func (uc *WorkerUseCase) GetByUserID(userID string) (*dto.WorkerResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != entity.RoleWorker {
		return nil, nil
	}
	profile, err := uc.workerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	resp := toWorkerResponse(&entity.WorkerWithProfile{User: *user, Profile: *profile})
	return &resp, nil
}

func toWorkerResponse(w *entity.WorkerWithProfile) dto.WorkerResponse {
	return dto.WorkerResponse{
		UserResponse: dto.UserResponse{
			ID:        w.User.ID,
			Email:     w.User.Email,
			FirstName: w.User.FirstName,
			LastName:  w.User.LastName,
			Role:      w.User.Role,
			Phone:     w.User.Phone,
			CreatedAt: w.User.CreatedAt,
		},
		WorkerProfile: toWorkerProfileResponse(&w.Profile),
	}
}

func toWorkerProfileResponse(p *entity.WorkerProfile) dto.WorkerProfileResponse {
	return dto.WorkerProfileResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Skills:       p.Skills,
		Experience:   p.Experience,
		Location:     p.Location,
		Availability: p.Availability,
		Description:  p.Description,
		HourlyRate:   p.HourlyRate,
	}
}
