package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kwawicks/kwawicks-api/internal/application/dto"
	"github.com/kwawicks/kwawicks-api/internal/application/usecase"
	"github.com/kwawicks/kwawicks-api/pkg/logger"
)

// SpeciesHandler serves /api/species. There is no delete.
type SpeciesHandler struct {
	uc  *usecase.SpeciesUseCase
	log *logger.Logger
}

func NewSpeciesHandler(uc *usecase.SpeciesUseCase, log *logger.Logger) *SpeciesHandler {
	return &SpeciesHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Create a species
// @Tags         species
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSpeciesRequest  true  "species"
// @Success      201   {object}  dto.SpeciesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/species [post]
func (h *SpeciesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSpeciesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Location("/api/species/" + out.SpeciesID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List species ordered by name
// @Tags         species
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.SpeciesResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/species [get]
func (h *SpeciesHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a species
// @Tags         species
// @Produce      json
// @Security     BearerAuth
// @Param        speciesId  path  string  true  "species id"
// @Success      200  {object}  dto.SpeciesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/species/{speciesId} [get]
func (h *SpeciesHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("speciesId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Replace a species
// @Tags         species
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        speciesId  path  string                    true  "species id"
// @Param        body       body  dto.UpdateSpeciesRequest  true  "species"
// @Success      200  {object}  dto.SpeciesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/species/{speciesId} [put]
func (h *SpeciesHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSpeciesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("speciesId"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}
