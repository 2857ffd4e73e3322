package handler

import (
	"strconv"
	"time"

	"multisig-vault/internal/adapter/http/dto"
	"multisig-vault/internal/core/domain"
	"multisig-vault/internal/core/ports"
	"multisig-vault/pkg/apperror"
	"multisig-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProposalHandler handles proposal lifecycle and execution endpoints.
type ProposalHandler struct {
	proposalSvc  ports.ProposalService
	executionSvc ports.ExecutionService
}

// NewProposalHandler creates a new ProposalHandler.
func NewProposalHandler(proposalSvc ports.ProposalService, executionSvc ports.ExecutionService) *ProposalHandler {
	return &ProposalHandler{
		proposalSvc:  proposalSvc,
		executionSvc: executionSvc,
	}
}

// Submit handles POST /api/v1/vaults/:id/proposals.
func (h *ProposalHandler) Submit(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.SubmitProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	var payload []byte
	if req.Payload != nil {
		payload = []byte(*req.Payload)
	}

	proposal, err := h.proposalSvc.Submit(c.Request.Context(), ports.SubmitRequest{
		VaultID:     vaultID,
		Caller:      caller,
		Destination: req.Destination,
		Amount:      req.Amount,
		Payload:     payload,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toProposalResponse(proposal))
}

// List handles GET /api/v1/vaults/:id/proposals.
func (h *ProposalHandler) List(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}

	proposals, err := h.proposalSvc.ListProposals(c.Request.Context(), vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ProposalResponse, len(proposals))
	for i := range proposals {
		items[i] = toProposalResponse(&proposals[i])
	}
	response.OK(c, dto.ProposalListResponse{Items: items, Total: len(items)})
}

// Get handles GET /api/v1/vaults/:id/proposals/:pid.
func (h *ProposalHandler) Get(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}
	proposalID, ok := proposalIDParam(c)
	if !ok {
		return
	}

	proposal, err := h.proposalSvc.GetProposal(c.Request.Context(), vaultID, proposalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toProposalResponse(proposal))
}

// Approve handles POST /api/v1/vaults/:id/proposals/:pid/approve.
func (h *ProposalHandler) Approve(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	proposalID, ok := proposalIDParam(c)
	if !ok {
		return
	}

	if err := h.proposalSvc.Approve(c.Request.Context(), vaultID, caller, proposalID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"proposal_id": proposalID, "approved_by": string(caller)})
}

// Revoke handles DELETE /api/v1/vaults/:id/proposals/:pid/approve.
func (h *ProposalHandler) Revoke(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	proposalID, ok := proposalIDParam(c)
	if !ok {
		return
	}

	if err := h.proposalSvc.Revoke(c.Request.Context(), vaultID, caller, proposalID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"proposal_id": proposalID, "revoked_by": string(caller)})
}

// Execute handles POST /api/v1/vaults/:id/proposals/:pid/execute.
func (h *ProposalHandler) Execute(c *gin.Context) {
	vaultID, ok := vaultIDParam(c)
	if !ok {
		return
	}
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}
	proposalID, ok := proposalIDParam(c)
	if !ok {
		return
	}

	result, err := h.executionSvc.Execute(c.Request.Context(), vaultID, caller, proposalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ExecutionResponse{
		ProposalID:  result.ProposalID,
		Outcome:     string(result.Outcome),
		Destination: result.Destination,
		Amount:      result.Amount,
	})
}

func toProposalResponse(p *domain.Proposal) dto.ProposalResponse {
	approvals := make([]string, len(p.Approvals))
	for i, o := range p.Approvals {
		approvals[i] = string(o)
	}
	var payload *string
	if len(p.Payload) > 0 {
		s := string(p.Payload)
		payload = &s
	}
	return dto.ProposalResponse{
		ID:          p.ID,
		Destination: p.Destination,
		Amount:      p.Amount,
		Payload:     payload,
		Approvals:   approvals,
		Executed:    p.Executed,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// proposalIDParam parses the :pid path parameter.
func proposalIDParam(c *gin.Context) (int64, bool) {
	proposalID, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil || proposalID < 0 {
		response.Error(c, apperror.Validation("invalid proposal id"))
		return 0, false
	}
	return proposalID, true
}
