package repository

import "github.com/laborconnect/laborconnect-api/internal/domain/entity"

// ContactMessageRepository puerto de persistencia para el formulario de contacto.
type ContactMessageRepository interface {
	Create(message *entity.ContactMessage) error
}
