package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laborconnect/laborconnect-api/internal/application/dto"
	"github.com/laborconnect/laborconnect-api/internal/application/usecase"
	"github.com/laborconnect/laborconnect-api/internal/domain/repository"
)

// WorkerHandler maneja el directorio público de trabajadores.
type WorkerHandler struct {
	uc *usecase.WorkerUseCase
}

// NewWorkerHandler construye el handler.
func NewWorkerHandler(uc *usecase.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar trabajadores con perfil
// @Tags         workers
// @Produce      json
// @Param        skills        query  string  false  "substring case-insensitive sobre skills"
// @Param        location      query  string  false  "substring case-insensitive sobre location"
// @Param        availability  query  string  false  "match exacto"
// @Success      200  {array}  dto.WorkerResponse
// @Router       /api/workers [get]
func (h *WorkerHandler) Search(c *fiber.Ctx) error {
	filters := repository.WorkerFilters{
		Skills:       c.Query("skills"),
		Location:     c.Query("location"),
		Availability: c.Query("availability"),
	}
	workers, err := h.uc.Search(filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(workers)
}

// GetByUserID godoc
// @Summary      Obtener un trabajador con su perfil
// @Tags         workers
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario trabajador"
// @Success      200  {object}  dto.WorkerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/workers/{userId} [get]
func (h *WorkerHandler) GetByUserID(c *fiber.Ctx) error {
	userID := c.Params("userId")
	worker, err := h.uc.GetByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if worker == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajador no encontrado"})
	}
	return c.JSON(worker)
}
