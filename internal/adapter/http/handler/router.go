package handler

import (
	"multisig-vault/internal/adapter/http/middleware"
	"multisig-vault/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	VaultSvc       ports.VaultService
	MembershipSvc  ports.MembershipService
	ProposalSvc    ports.ProposalService
	ExecutionSvc   ports.ExecutionService
	TreasurySvc    ports.TreasuryService
	TokenSvc       ports.TokenService
	EventSource    ports.EventSource // nil = event read API disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.TokenSvc)
	v1.POST("/auth/token", authHandler.IssueToken)

	vaultHandler := NewVaultHandler(deps.VaultSvc, deps.MembershipSvc, deps.TreasurySvc)
	// Vault creation bootstraps ownership, and deposits are open to anyone.
	v1.POST("/vaults", vaultHandler.Create)
	v1.POST("/vaults/:id/deposits", vaultHandler.Deposit)

	// --- Owner-authenticated routes ---
	ownerAuth := middleware.OwnerAuth(deps.TokenSvc, deps.Logger)
	vaults := v1.Group("/vaults/:id", ownerAuth)
	{
		vaults.GET("", vaultHandler.Get)
		vaults.GET("/owners", vaultHandler.ListOwners)
		vaults.POST("/owners", vaultHandler.AddOwner)
		vaults.DELETE("/owners/:identity", vaultHandler.RemoveOwner)
		vaults.PUT("/threshold", vaultHandler.ChangeThreshold)
		vaults.GET("/balances", vaultHandler.Balances)
		vaults.POST("/sync", vaultHandler.Sync)
	}

	proposalHandler := NewProposalHandler(deps.ProposalSvc, deps.ExecutionSvc)
	proposals := v1.Group("/vaults/:id/proposals", ownerAuth)
	{
		proposals.POST("", proposalHandler.Submit)
		proposals.GET("", proposalHandler.List)
		proposals.GET("/:pid", proposalHandler.Get)
		proposals.POST("/:pid/approve", proposalHandler.Approve)
		proposals.DELETE("/:pid/approve", proposalHandler.Revoke)
		proposals.POST("/:pid/execute", proposalHandler.Execute)
	}

	// --- Event stream read API ---
	if deps.EventSource != nil {
		eventsHandler := NewEventsHandler(deps.EventSource)
		v1.GET("/vaults/:id/events", ownerAuth, eventsHandler.Recent)
	}

	return r
}
