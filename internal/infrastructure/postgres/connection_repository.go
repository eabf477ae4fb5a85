package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.ConnectionRepository = (*ConnectionRepo)(nil)

// ConnectionRepo implementación del puerto ConnectionRepository sobre PostgreSQL.
type ConnectionRepo struct {
	pool *pgxpool.Pool
}

// NewConnectionRepository construye el adaptador de persistencia para conexiones.
func NewConnectionRepository(pool *pgxpool.Pool) *ConnectionRepo {
	return &ConnectionRepo{pool: pool}
}

// Create persiste una conexión. Pares repetidos crean filas nuevas.
func (r *ConnectionRepo) Create(connection *entity.Connection) error {
	query := `
		INSERT INTO connections (id, employer_id, worker_id, status, last_project, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		connection.ID, connection.EmployerID, connection.WorkerID,
		connection.Status, connection.LastProject, connection.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert connection: %w", err)
	}
	return nil
}

// ListByEmployer devuelve las conexiones del empleador unidas con el trabajador
// y su perfil. El doble JOIN interno omite filas sin trabajador o sin perfil,
// igual que el driver en memoria.
func (r *ConnectionRepo) ListByEmployer(employerID string) ([]*entity.ConnectionWithWorker, error) {
	query := `
		SELECT c.id, c.employer_id, c.worker_id, c.status, c.last_project, c.created_at,
		       u.id, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.phone, u.created_at,
		       p.id, p.user_id, p.skills, p.experience, p.location, p.availability, p.description, p.hourly_rate
		FROM connections c
		JOIN users u ON u.id = c.worker_id
		JOIN worker_profiles p ON p.user_id = c.worker_id
		WHERE c.employer_id = $1`
	rows, err := r.pool.Query(context.Background(), query, employerID)
	if err != nil {
		return nil, fmt.Errorf("list connections by employer: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.ConnectionWithWorker, 0)
	for rows.Next() {
		var c entity.ConnectionWithWorker
		err := rows.Scan(
			&c.Connection.ID, &c.Connection.EmployerID, &c.Connection.WorkerID,
			&c.Connection.Status, &c.Connection.LastProject, &c.Connection.CreatedAt,
			&c.Worker.ID, &c.Worker.Email, &c.Worker.PasswordHash, &c.Worker.FirstName,
			&c.Worker.LastName, &c.Worker.Role, &c.Worker.Phone, &c.Worker.CreatedAt,
			&c.Profile.ID, &c.Profile.UserID, &c.Profile.Skills, &c.Profile.Experience,
			&c.Profile.Location, &c.Profile.Availability, &c.Profile.Description, &c.Profile.HourlyRate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// ListByWorker devuelve las conexiones planas del trabajador.
func (r *ConnectionRepo) ListByWorker(workerID string) ([]*entity.Connection, error) {
	query := `
		SELECT id, employer_id, worker_id, status, last_project, created_at
		FROM connections WHERE worker_id = $1`
	rows, err := r.pool.Query(context.Background(), query, workerID)
	if err != nil {
		return nil, fmt.Errorf("list connections by worker: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Connection, 0)
	for rows.Next() {
		var c entity.Connection
		err := rows.Scan(&c.ID, &c.EmployerID, &c.WorkerID, &c.Status, &c.LastProject, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
