package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/application/usecase"
	"github.com/laborconnect/laborconnect-api/internal/domain"
)

// ContactHandler maneja el formulario de contacto.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar mensaje de contacto
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContactRequest  true  "name, email, subject, message"
// @Success      201   {object}  dto.ContactResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, subject y message son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
