package domain

import (
	"time"

	"github.com/google/uuid"
)

// Proposal is a recorded intent to release Amount to Destination carrying
// an opaque Payload. IDs are assigned sequentially per vault at submit time
// and never reused; proposals are never deleted.
//
// Approvals is the sole source of truth for the approval count. It is a
// fact-of-record: an approval by an owner who is later removed from the
// vault still counts until revoked or until the proposal executes.
type Proposal struct {
	ID          int64     `json:"id"`
	VaultID     uuid.UUID `json:"vault_id"`
	Destination string    `json:"destination"`
	Amount      int64     `json:"amount"`
	Payload     []byte    `json:"payload,omitempty"`
	Approvals   []Owner   `json:"approvals"`
	Executed    bool      `json:"executed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasApproval reports whether identity is in the approval set.
func (p *Proposal) HasApproval(identity Owner) bool {
	for _, o := range p.Approvals {
		if o == identity {
			return true
		}
	}
	return false
}

// ApprovalCount returns the number of distinct approvers on record.
func (p *Proposal) ApprovalCount() int {
	return len(p.Approvals)
}
