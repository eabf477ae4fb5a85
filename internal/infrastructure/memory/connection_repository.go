package memory

import (
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.ConnectionRepository = (*ConnectionRepo)(nil)

// ConnectionRepo implementación en memoria del puerto ConnectionRepository.
type ConnectionRepo struct {
	store *Store
}

// NewConnectionRepository construye el adaptador sobre el store compartido.
func NewConnectionRepository(store *Store) *ConnectionRepo {
	return &ConnectionRepo{store: store}
}

// Create inserta una conexión. Pares repetidos crean filas nuevas.
func (r *ConnectionRepo) Create(connection *entity.Connection) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *connection
	s.connections[clone.ID] = &clone
	return nil
}

// ListByEmployer devuelve las conexiones del empleador unidas con el trabajador
// y su perfil. Conexiones cuyo trabajador o perfil no resuelve se omiten en silencio.
func (r *ConnectionRepo) ListByEmployer(employerID string) ([]*entity.ConnectionWithWorker, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.ConnectionWithWorker, 0)
	for _, c := range s.connections {
		if c.EmployerID != employerID {
			continue
		}
		worker, ok := s.users[c.WorkerID]
		if !ok {
			continue
		}
		profile := s.workerProfileByUserLocked(c.WorkerID)
		if profile == nil {
			continue
		}
		out = append(out, &entity.ConnectionWithWorker{
			Connection: *c,
			Worker:     *worker,
			Profile:    *profile,
		})
	}
	return out, nil
}

// ListByWorker devuelve las conexiones planas del trabajador.
func (r *ConnectionRepo) ListByWorker(workerID string) ([]*entity.Connection, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Connection, 0)
	for _, c := range s.connections {
		if c.WorkerID == workerID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}
