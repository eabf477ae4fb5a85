package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/domain"
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

// ConnectionUseCase capa de política sobre las conexiones empleador→trabajador:
// status por defecto "connected" y verificación referencial de ambos usuarios
// antes de persistir. Solicitudes repetidas crean filas nuevas (sin dedupe).
type ConnectionUseCase struct {
	connectionRepo repository.ConnectionRepository
	userRepo       repository.UserRepository
}

// NewConnectionUseCase construye el caso de uso.
func NewConnectionUseCase(connectionRepo repository.ConnectionRepository, userRepo repository.UserRepository) *ConnectionUseCase {
	return &ConnectionUseCase{connectionRepo: connectionRepo, userRepo: userRepo}
}

// Create crea una conexión. EmployerID debe referenciar un usuario employer y
// WorkerID un usuario worker; si no, ErrInvalidReference.
func (uc *ConnectionUseCase) Create(in dto.CreateConnectionRequest) (*dto.ConnectionResponse, error) {
	if in.EmployerID == "" || in.WorkerID == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ConnectionStatusConnected
	}
	if status != entity.ConnectionStatusConnected && status != entity.ConnectionStatusHired {
		return nil, domain.ErrInvalidInput
	}

	employer, err := uc.userRepo.GetByID(in.EmployerID)
	if err != nil {
		return nil, err
	}
	if employer == nil || employer.Role != entity.RoleEmployer {
		return nil, domain.ErrInvalidReference
	}
	worker, err := uc.userRepo.GetByID(in.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil || worker.Role != entity.RoleWorker {
		return nil, domain.ErrInvalidReference
	}

	connection := &entity.Connection{
		ID:          uuid.New().String(),
		EmployerID:  in.EmployerID,
		WorkerID:    in.WorkerID,
		Status:      status,
		LastProject: in.LastProject,
		CreatedAt:   time.Now(),
	}
	if err := uc.connectionRepo.Create(connection); err != nil {
		return nil, err
	}
	return toConnectionResponse(connection), nil
}

// ListByEmployer devuelve las conexiones del empleador anotadas con trabajador y perfil.
func (uc *ConnectionUseCase) ListByEmployer(employerID string) ([]dto.ConnectionWithWorkerResponse, error) {
	connections, err := uc.connectionRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConnectionWithWorkerResponse, 0, len(connections))
	for _, c := range connections {
		out = append(out, dto.ConnectionWithWorkerResponse{
			ConnectionResponse: *toConnectionResponse(&c.Connection),
			Worker:             toWorkerResponse(&entity.WorkerWithProfile{User: c.Worker, Profile: c.Profile}),
		})
	}
	return out, nil
}

// ListByWorker devuelve las conexiones planas de un trabajador.
func (uc *ConnectionUseCase) ListByWorker(workerID string) ([]dto.ConnectionResponse, error) {
	connections, err := uc.connectionRepo.ListByWorker(workerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConnectionResponse, 0, len(connections))
	for _, c := range connections {
		out = append(out, *toConnectionResponse(c))
	}
	return out, nil
}

func toConnectionResponse(c *entity.Connection) *dto.ConnectionResponse {
	return &dto.ConnectionResponse{
		ID:          c.ID,
		EmployerID:  c.EmployerID,
		WorkerID:    c.WorkerID,
		Status:      c.Status,
		LastProject: c.LastProject,
		CreatedAt:   c.CreatedAt,
	}
}
