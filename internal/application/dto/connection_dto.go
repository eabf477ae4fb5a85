package dto

import "time"

// CreateConnectionRequest entrada para crear una conexión empleador→trabajador.
type CreateConnectionRequest struct {
	EmployerID  string `json:"employerId" validate:"required,uuid"`
	WorkerID    string `json:"workerId" validate:"required,uuid"`
	Status      string `json:"status" validate:"omitempty,oneof=connected hired"`
	LastProject string `json:"lastProject"`
}

// ConnectionResponse salida de una conexión.
type ConnectionResponse struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employerId"`
	WorkerID    string    `json:"workerId"`
	Status      string    `json:"status"`
	LastProject string    `json:"lastProject,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ConnectionWithWorkerResponse conexión anotada con el trabajador y su perfil.
type ConnectionWithWorkerResponse struct {
	ConnectionResponse
	Worker WorkerResponse `json:"worker"`
}
