package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.WorkerProfileRepository = (*WorkerProfileRepo)(nil)

// WorkerProfileRepo implementación del puerto WorkerProfileRepository sobre PostgreSQL.
type WorkerProfileRepo struct {
	pool *pgxpool.Pool
}

// NewWorkerProfileRepository construye el adaptador de persistencia para perfiles de trabajador.
func NewWorkerProfileRepository(pool *pgxpool.Pool) *WorkerProfileRepo {
	return &WorkerProfileRepo{pool: pool}
}

// Create persiste un perfil de trabajador.
func (r *WorkerProfileRepo) Create(profile *entity.WorkerProfile) error {
	query := `
		INSERT INTO worker_profiles (id, user_id, skills, experience, location, availability, description, hourly_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		profile.ID, profile.UserID, profile.Skills, profile.Experience,
		profile.Location, profile.Availability, profile.Description, profile.HourlyRate,
	)
	if err != nil {
		return fmt.Errorf("insert worker profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de un usuario; nil si no existe.
func (r *WorkerProfileRepo) GetByUserID(userID string) (*entity.WorkerProfile, error) {
	query := `
		SELECT id, user_id, skills, experience, location, availability, description, hourly_rate
		FROM worker_profiles WHERE user_id = $1`
	var p entity.WorkerProfile
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(
		&p.ID, &p.UserID, &p.Skills, &p.Experience, &p.Location,
		&p.Availability, &p.Description, &p.HourlyRate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker profile: %w", err)
	}
	return &p, nil
}

// ListWithUsers une perfiles con usuarios de rol worker y aplica los filtros
// conjuntivos (ILIKE para substrings, igualdad para availability). El JOIN
// interno omite perfiles sin usuario resoluble, igual que el driver en memoria.
func (r *WorkerProfileRepo) ListWithUsers(filters repository.WorkerFilters) ([]*entity.WorkerWithProfile, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.phone, u.created_at,
		       p.id, p.user_id, p.skills, p.experience, p.location, p.availability, p.description, p.hourly_rate
		FROM worker_profiles p
		JOIN users u ON u.id = p.user_id AND u.role = 'worker'
		WHERE ($1 = '' OR p.skills ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR p.location ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR p.availability = $3)`
	rows, err := r.pool.Query(context.Background(), query,
		filters.Skills, filters.Location, filters.Availability,
	)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()

	workers := make([]*entity.WorkerWithProfile, 0)
	for rows.Next() {
		var w entity.WorkerWithProfile
		err := rows.Scan(
			&w.User.ID, &w.User.Email, &w.User.PasswordHash, &w.User.FirstName,
			&w.User.LastName, &w.User.Role, &w.User.Phone, &w.User.CreatedAt,
			&w.Profile.ID, &w.Profile.UserID, &w.Profile.Skills, &w.Profile.Experience,
			&w.Profile.Location, &w.Profile.Availability, &w.Profile.Description, &w.Profile.HourlyRate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		workers = append(workers, &w)
	}
	return workers, rows.Err()
}
