package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kwawicks/kwawicks-api/internal/application/auth"
	"github.com/kwawicks/kwawicks-api/internal/application/dto"
	"github.com/kwawicks/kwawicks-api/internal/domain"
	"github.com/kwawicks/kwawicks-api/pkg/logger"
)

// AuthHandler handles login and token refresh.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Sign in with username and PIN
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usernameOrEmail, password (6-digit PIN)"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return h.authError(c, err, "INVALID_CREDENTIALS", "Incorrect username or PIN.", "Login failed.")
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Exchange a refresh token for new tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refreshToken"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Refresh(c.UserContext(), in)
	if err != nil {
		return h.authError(c, err, "INVALID_REFRESH", "Session expired. Please sign in again.", "Refresh failed.")
	}
	return c.JSON(out)
}

// authError maps auth failures. failedMsg is used when the user pool answered without tokens.
func (h *AuthHandler) authError(c *fiber.Ctx, err error, unauthorizedCode, unauthorizedMsg, failedMsg string) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: ve.Message})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: unauthorizedCode, Message: unauthorizedMsg})
	case errors.Is(err, domain.ErrUserNotConfirmed):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_NOT_CONFIRMED", Message: "User is not confirmed."})
	case errors.Is(err, domain.ErrAuthFailed):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTH_FAILED", Message: failedMsg})
	case errors.Is(err, domain.ErrNewPasswordRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NEW_PASSWORD_REQUIRED", Message: "You must set a new PIN before you can sign in."})
	case errors.Is(err, domain.ErrAuthNotConfigured):
		h.log.Error().Msg("auth: COGNITO_APP_CLIENT_ID is not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CONFIG", Message: "Authentication is not configured."})
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg("auth: request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "AUTH_FAILED", Message: "Something went wrong. Please try again."})
}
