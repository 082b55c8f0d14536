package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kwawicks/kwawicks-api/internal/application/dto"
)

// Me godoc
// @Summary      Caller identity from the token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me/me [get]
func Me(c *fiber.Ctx) error {
	groups := GetGroups(c)
	if groups == nil {
		groups = []string{}
	}
	return c.JSON(dto.MeResponse{Username: GetUsername(c), Groups: groups})
}
