package handler

import (
	"time"

	"multisig-vault/internal/adapter/http/dto"
	"multisig-vault/internal/adapter/http/middleware"
	"multisig-vault/internal/core/domain"
	"multisig-vault/internal/core/ports"
	"multisig-vault/pkg/apperror"
	"multisig-vault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VaultHandler handles vault lifecycle, membership and treasury endpoints.
type VaultHandler struct {
	vaultSvc      ports.VaultService
	membershipSvc ports.MembershipService
	treasurySvc   ports.TreasuryService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(vaultSvc ports.VaultService, membershipSvc ports.MembershipService, treasurySvc ports.TreasuryService) *VaultHandler {
	return &VaultHandler{
		vaultSvc:      vaultSvc,
		membershipSvc: membershipSvc,
		treasurySvc:   treasurySvc,
	}
}

// Create handles POST /api/v1/vaults.
func (h *VaultHandler) Create(c *gin.Context) {
	var req dto.CreateVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	owners := make([]domain.Owner, len(req.Owners))
	for i, o := range req.Owners {
		owners[i] = domain.Owner(o)
	}

	vault, err := h.vaultSvc.Initialize(c.Request.Context(), ports.InitializeRequest{
		Owners:    owners,
		Threshold: req.Threshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toVaultResponse(vault))
}

// Get handles GET /api/v1/vaults/:id.
func (h *VaultHandler) Get(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	vault, err := h.vaultSvc.GetVault(c.Request.Context(), vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toVaultResponse(vault))
}

// ListOwners handles GET /api/v1/vaults/:id/owners.
func (h *VaultHandler) ListOwners(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	owners, err := h.vaultSvc.ListOwners(c.Request.Context(), vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]string, len(owners))
	for i, o := range owners {
		out[i] = string(o)
	}
	response.OK(c, gin.H{"owners": out})
}

// Balances handles GET /api/v1/vaults/:id/balances.
func (h *VaultHandler) Balances(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	balances, err := h.vaultSvc.Balances(c.Request.Context(), vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalancesResponse{
		Tracked:   balances.Tracked,
		Actual:    balances.Actual,
		Untracked: balances.Untracked,
	})
}

// AddOwner handles POST /api/v1/vaults/:id/owners.
func (h *VaultHandler) AddOwner(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.AddOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.membershipSvc.AddOwner(c.Request.Context(), vaultID, caller, domain.Owner(req.Identity)); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"identity": req.Identity})
}

// RemoveOwner handles DELETE /api/v1/vaults/:id/owners/:identity.
func (h *VaultHandler) RemoveOwner(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	identity := domain.Owner(c.Param("identity"))
	if err := h.membershipSvc.RemoveOwner(c.Request.Context(), vaultID, caller, identity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"identity": string(identity)})
}

// ChangeThreshold handles PUT /api/v1/vaults/:id/threshold.
func (h *VaultHandler) ChangeThreshold(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.ChangeThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.membershipSvc.ChangeThreshold(c.Request.Context(), vaultID, caller, req.Threshold); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"threshold": req.Threshold})
}

// Deposit handles POST /api/v1/vaults/:id/deposits. Deposits are open to
// anyone, not just owners, so this route carries no owner auth.
func (h *VaultHandler) Deposit(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	vault, err := h.treasurySvc.Deposit(c.Request.Context(), vaultID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.DepositResponse{TrackedBalance: vault.TrackedBalance})
}

// Sync handles POST /api/v1/vaults/:id/sync.
func (h *VaultHandler) Sync(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	result, err := h.treasurySvc.SyncForcedDeposits(c.Request.Context(), vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SyncResponse{
		Reconciled:         result.Reconciled,
		Amount:             result.Amount,
		ForcedDepositCount: result.ForcedDepositCount,
	})
}

func toVaultResponse(v *domain.Vault) dto.VaultResponse {
	owners := make([]string, len(v.Owners))
	for i, o := range v.Owners {
		owners[i] = string(o)
	}
	return dto.VaultResponse{
		ID:                 v.ID.String(),
		Owners:             owners,
		Threshold:          v.Threshold,
		TrackedBalance:     v.TrackedBalance,
		ForcedDepositCount: v.ForcedDepositCount,
		NextProposalID:     v.NextProposalID,
		CreatedAt:          v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// vaultIDParam parses the :id path parameter, writing a validation error on
// failure.
func vaultIDParam(c *gin.Context) (uuid.UUID, bool) {
	vaultID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid vault id"))
		return uuid.Nil, false
	}
	return vaultID, true
}

// callerIdentity reads the authenticated owner identity set by OwnerAuth.
func callerIdentity(c *gin.Context) (domain.Owner, bool) {
	v, ok := c.Get(middleware.CtxOwner)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	identity, ok := v.(domain.Owner)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return identity, true
}
