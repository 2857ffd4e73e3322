package handler

import (
	"net/http"
	"strconv"

	"multisig-vault/internal/adapter/http/dto"
	"multisig-vault/internal/core/domain"
	"multisig-vault/internal/core/ports"
	"multisig-vault/pkg/apperror"
	"multisig-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler mints bearer tokens for owner identities. The hosting
// environment authenticates owners before calling this; the token only
// transports the identity to the vault routes.
type AuthHandler struct {
	tokenSvc ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokenSvc ports.TokenService) *AuthHandler {
	return &AuthHandler{tokenSvc: tokenSvc}
}

// IssueToken handles POST /api/v1/auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.tokenSvc.Generate(domain.Owner(req.Identity))
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// EventsHandler exposes the per-vault event stream to observers.
type EventsHandler struct {
	source ports.EventSource
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(source ports.EventSource) *EventsHandler {
	return &EventsHandler{source: source}
}

// Recent handles GET /api/v1/vaults/:id/events.
func (h *EventsHandler) Recent(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	count := int64(50)
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 || n > 1000 {
			response.Error(c, apperror.Validation("count must be between 1 and 1000"))
			return
		}
		count = n
	}

	events, err := h.source.Recent(c.Request.Context(), vaultID.String(), count)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"events": events, "total": len(events)})
}

// HealthCheck verifies every registered dependency and reports per-dep
// status. Degraded dependencies yield 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
