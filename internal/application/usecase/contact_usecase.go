package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/domain"
	"github.com/laborconnect/laborconnect-api/internal/domain/entity"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

// ContactUseCase recepción del formulario de contacto.
type ContactUseCase struct {
	repo repository.ContactMessageRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactMessageRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Create persiste un mensaje de contacto y devuelve la confirmación con su id.
func (uc *ContactUseCase) Create(in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" || in.Email == "" || in.Subject == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	message := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(message); err != nil {
		return nil, err
	}
	return &dto.ContactResponse{Message: "Message sent successfully", ID: message.ID}, nil
}
