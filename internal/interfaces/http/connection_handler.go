package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/application/usecase"
	"github.com/laborconnect/laborconnect-api/internal/domain"
)

// ConnectionHandler maneja las conexiones empleador→trabajador.
type ConnectionHandler struct {
	uc *usecase.ConnectionUseCase
}

// NewConnectionHandler construye el handler.
func NewConnectionHandler(uc *usecase.ConnectionUseCase) *ConnectionHandler {
	return &ConnectionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear conexión (contacto o contratación)
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConnectionRequest  true  "employerId, workerId, status opcional"
// @Success      201   {object}  dto.ConnectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/connections [post]
func (h *ConnectionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConnectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employerId y workerId son requeridos; status debe ser connected o hired"})
		case errors.Is(err, domain.ErrInvalidReference):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employerId debe ser un employer existente y workerId un worker existente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByEmployer godoc
// @Summary      Conexiones de un empleador con trabajador y perfil
// @Tags         connections
// @Produce      json
// @Param        employerId  path  string  true  "ID del empleador"
// @Success      200  {array}  dto.ConnectionWithWorkerResponse
// @Router       /api/connections/{employerId} [get]
func (h *ConnectionHandler) ListByEmployer(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmployer(c.Params("employerId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// ListByWorker godoc
// @Summary      Conexiones planas de un trabajador
// @Tags         connections
// @Produce      json
// @Param        workerId  path  string  true  "ID del trabajador"
// @Success      200  {array}  dto.ConnectionResponse
// @Router       /api/connections/worker/{workerId} [get]
func (h *ConnectionHandler) ListByWorker(c *fiber.Ctx) error {
	out, err := h.uc.ListByWorker(c.Params("workerId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
