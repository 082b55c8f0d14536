package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kwawicks/kwawicks-api/internal/application/auth"
	"github.com/kwawicks/kwawicks-api/internal/application/usecase"
	"github.com/kwawicks/kwawicks-api/pkg/logger"
)

// GroupAdmin is the user pool group allowed to write.
const GroupAdmin = "Admin"

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ClientUC  *usecase.ClientUseCase
	SpeciesUC *usecase.SpeciesUseCase
	Verifier  TokenVerifier
	Log       *logger.Logger
}

// Router registers the API routes. Reads need a valid token; writes also need the Admin group.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")
	authn := AuthMiddleware(deps.Verifier, log)
	admin := RequireGroup(GroupAdmin)

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	api.Get("/me/me", authn, Me)

	clientHandler := NewClientHandler(deps.ClientUC, log)
	clients := api.Group("/clients", authn)
	clients.Post("/", admin, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:clientId", clientHandler.GetByID)
	clients.Put("/:clientId", admin, clientHandler.Update)
	clients.Delete("/:clientId", admin, clientHandler.Delete)

	speciesHandler := NewSpeciesHandler(deps.SpeciesUC, log)
	species := api.Group("/species", authn)
	species.Post("/", admin, speciesHandler.Create)
	species.Get("/", speciesHandler.List)
	species.Get("/:speciesId", speciesHandler.GetByID)
	species.Put("/:speciesId", admin, speciesHandler.Update)
}
