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

var _ repository.EmployerProfileRepository = (*EmployerProfileRepo)(nil)

// EmployerProfileRepo implementación del puerto EmployerProfileRepository sobre PostgreSQL.
type EmployerProfileRepo struct {
	pool *pgxpool.Pool
}

// NewEmployerProfileRepository construye el adaptador de persistencia para perfiles de empleador.
func NewEmployerProfileRepository(pool *pgxpool.Pool) *EmployerProfileRepo {
	return &EmployerProfileRepo{pool: pool}
}

// Create persiste un perfil de empleador.
func (r *EmployerProfileRepo) Create(profile *entity.EmployerProfile) error {
	query := `
		INSERT INTO employer_profiles (id, user_id, company_name, industry, job_needs, location)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		profile.ID, profile.UserID, profile.CompanyName, profile.Industry,
		profile.JobNeeds, profile.Location,
	)
	if err != nil {
		return fmt.Errorf("insert employer profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de un usuario; nil si no existe.
func (r *EmployerProfileRepo) GetByUserID(userID string) (*entity.EmployerProfile, error) {
	query := `
		SELECT id, user_id, company_name, industry, job_needs, location
		FROM employer_profiles WHERE user_id = $1`
	var p entity.EmployerProfile
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Industry, &p.JobNeeds, &p.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employer profile: %w", err)
	}
	return &p, nil
}
