package dto

// TokenRequest is the request body for minting an owner bearer token.
type TokenRequest struct {
	Identity string `json:"identity" binding:"required,safe_id,max=100"`
}

// TokenResponse is the response body for a minted token.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateVaultRequest is the request body for vault initialization.
type CreateVaultRequest struct {
	Owners    []string `json:"owners" binding:"required,min=1,dive,safe_id,max=100"`
	Threshold int      `json:"threshold" binding:"required,min=1"`
}

// VaultResponse is the response body for vault queries.
type VaultResponse struct {
	ID                 string   `json:"id"`
	Owners             []string `json:"owners"`
	Threshold          int      `json:"threshold"`
	TrackedBalance     int64    `json:"tracked_balance"`
	ForcedDepositCount int64    `json:"forced_deposit_count"`
	NextProposalID     int64    `json:"next_proposal_id"`
	CreatedAt          string   `json:"created_at"`
}

// BalancesResponse is the response for the three balance views.
type BalancesResponse struct {
	Tracked   int64 `json:"tracked"`
	Actual    int64 `json:"actual"`
	Untracked int64 `json:"untracked"`
}

// AddOwnerRequest is the request body for adding an owner.
type AddOwnerRequest struct {
	Identity string `json:"identity" binding:"required,safe_id,max=100"`
}

// ChangeThresholdRequest is the request body for a threshold change.
type ChangeThresholdRequest struct {
	Threshold int `json:"threshold" binding:"required,min=1"`
}

// DepositRequest is the request body for an announced deposit.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// DepositResponse reports the tracked balance after a deposit.
type DepositResponse struct {
	TrackedBalance int64 `json:"tracked_balance"`
}

// SyncResponse reports the result of a forced-deposit reconciliation.
type SyncResponse struct {
	Reconciled         bool  `json:"reconciled"`
	Amount             int64 `json:"amount"`
	ForcedDepositCount int64 `json:"forced_deposit_count"`
}

// SubmitProposalRequest is the request body for proposal submission.
type SubmitProposalRequest struct {
	Destination string  `json:"destination" binding:"required,max=200"`
	Amount      int64   `json:"amount" binding:"min=0"`
	Payload     *string `json:"payload,omitempty"`
}

// ProposalResponse is the response body for proposal queries.
type ProposalResponse struct {
	ID          int64    `json:"id"`
	Destination string   `json:"destination"`
	Amount      int64    `json:"amount"`
	Payload     *string  `json:"payload,omitempty"`
	Approvals   []string `json:"approvals"`
	Executed    bool     `json:"executed"`
	CreatedAt   string   `json:"created_at"`
}

// ProposalListResponse wraps the full proposal ledger of one vault.
type ProposalListResponse struct {
	Items []ProposalResponse `json:"items"`
	Total int                `json:"total"`
}

// ExecutionResponse is the response body for an execute attempt that
// reached the release step. "FAILED" means the release declined and the
// proposal is open for retry.
type ExecutionResponse struct {
	ProposalID  int64  `json:"proposal_id"`
	Outcome     string `json:"outcome"`
	Destination string `json:"destination"`
	Amount      int64  `json:"amount"`
}
