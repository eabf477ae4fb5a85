package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

var _ repository.ContactMessageRepository = (*ContactMessageRepo)(nil)

// ContactMessageRepo implementación del puerto ContactMessageRepository sobre PostgreSQL.
type ContactMessageRepo struct {
	pool *pgxpool.Pool
}

// NewContactMessageRepository construye el adaptador de persistencia para mensajes de contacto.
func NewContactMessageRepository(pool *pgxpool.Pool) *ContactMessageRepo {
	return &ContactMessageRepo{pool: pool}
}

// Create persiste un mensaje de contacto.
func (r *ContactMessageRepo) Create(message *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		message.ID, message.Name, message.Email, message.Subject, message.Message, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
