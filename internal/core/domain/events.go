package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies an observable state change on a vault.
type EventType string

const (
	EventFundsReceived           EventType = "FUNDS_RECEIVED"
	EventForcedDepositSynced     EventType = "FORCED_DEPOSIT_RECONCILED"
	EventProposalSubmitted       EventType = "PROPOSAL_SUBMITTED"
	EventProposalApproved        EventType = "PROPOSAL_APPROVED"
	EventApprovalRevoked         EventType = "APPROVAL_REVOKED"
	EventProposalExecuted        EventType = "PROPOSAL_EXECUTED"
	EventProposalExecutionFailed EventType = "PROPOSAL_EXECUTION_FAILED"
	EventOwnerAdded              EventType = "OWNER_ADDED"
	EventOwnerRemoved            EventType = "OWNER_REMOVED"
	EventThresholdChanged        EventType = "THRESHOLD_CHANGED"
)

// VaultEvent is the record published to external observers after a state
// change has committed. Observers are collaborators only; nothing in the
// core reads these back.
type VaultEvent struct {
	ID         uuid.UUID `json:"id"`
	VaultID    uuid.UUID `json:"vault_id"`
	Type       EventType `json:"type"`
	Actor      Owner     `json:"actor,omitempty"`
	ProposalID *int64    `json:"proposal_id,omitempty"`
	Amount     *int64    `json:"amount,omitempty"`
	Identity   Owner     `json:"identity,omitempty"`  // owner added/removed
	Threshold  *int      `json:"threshold,omitempty"` // threshold changes
	SyncCount  *int64    `json:"sync_count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewVaultEvent builds an event with a fresh id and timestamp.
func NewVaultEvent(vaultID uuid.UUID, typ EventType, actor Owner) VaultEvent {
	return VaultEvent{
		ID:         uuid.New(),
		VaultID:    vaultID,
		Type:       typ,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
}
