package repository

import "github.com/laborconnect/laborconnect-api/internal/domain/entity"

// ConnectionRepository puerto de persistencia para Connection.
type ConnectionRepository interface {
	Create(connection *entity.Connection) error
	// ListByEmployer une cada conexión del empleador con el trabajador y su perfil;
	// las conexiones cuyo trabajador o perfil no resuelve se omiten en silencio.
	ListByEmployer(employerID string) ([]*entity.ConnectionWithWorker, error)
	ListByWorker(workerID string) ([]*entity.Connection, error)
}
