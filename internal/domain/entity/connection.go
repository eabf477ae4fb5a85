package entity

import "time"

// Estados válidos para Connection.
const (
	ConnectionStatusConnected = "connected"
	ConnectionStatusHired     = "hired"
)

// Connection vincula un empleador con un trabajador (contacto o contratación).
// Un mismo par empleador/trabajador puede tener varias filas.
type Connection struct {
	ID          string
	EmployerID  string
	WorkerID    string
	Status      string // connected, hired
	LastProject string // opcional
	CreatedAt   time.Time
}
