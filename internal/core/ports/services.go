package ports

import (
	"context"
	"time"

	"multisig-vault/internal/core/domain"

	"github.com/google/uuid"
)

// CustodyGateway is the boundary to the custodied pool itself: the one
// collaborator that holds real funds. Balance is the externally observable
// balance, which can grow outside the deposit path. Release performs the
// actual transfer; it returns false for an ordinary decline (the expected
// failure mode) and an error only for fatal faults. Release may re-enter
// the service before returning.
type CustodyGateway interface {
	Balance(ctx context.Context, vaultID uuid.UUID) (int64, error)
	Release(ctx context.Context, vaultID uuid.UUID, destination string, amount int64, payload []byte) (bool, error)
}

// EventPublisher delivers committed state changes to external observers.
// Publishing is best-effort; a publish failure never rolls back state.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.VaultEvent) error
}

// EventSource reads back recently published events for observers, newest
// first.
type EventSource interface {
	Recent(ctx context.Context, vaultID string, count int64) ([]domain.VaultEvent, error)
}

// TokenService handles the bearer tokens the hosting environment uses to
// carry an already-authenticated owner identity.
type TokenService interface {
	Generate(identity domain.Owner) (string, time.Time, error)
	Validate(tokenString string) (domain.Owner, error)
}

// --- Service Ports (Business Logic) ---

// VaultService covers vault lifecycle and read-only queries.
type VaultService interface {
	Initialize(ctx context.Context, req InitializeRequest) (*domain.Vault, error)
	GetVault(ctx context.Context, vaultID uuid.UUID) (*domain.Vault, error)
	ListOwners(ctx context.Context, vaultID uuid.UUID) ([]domain.Owner, error)
	Balances(ctx context.Context, vaultID uuid.UUID) (*VaultBalances, error)
}

// InitializeRequest holds validated input for vault creation.
type InitializeRequest struct {
	Owners    []domain.Owner
	Threshold int
}

// VaultBalances is a read-only snapshot of the three balance views.
type VaultBalances struct {
	Tracked   int64
	Actual    int64
	Untracked int64
}

// MembershipService is the quorum rule: the owner set and the threshold.
type MembershipService interface {
	AddOwner(ctx context.Context, vaultID uuid.UUID, caller, identity domain.Owner) error
	RemoveOwner(ctx context.Context, vaultID uuid.UUID, caller, identity domain.Owner) error
	ChangeThreshold(ctx context.Context, vaultID uuid.UUID, caller domain.Owner, newThreshold int) error
}

// ProposalService owns the proposal ledger and per-owner approval marks.
type ProposalService interface {
	Submit(ctx context.Context, req SubmitRequest) (*domain.Proposal, error)
	Approve(ctx context.Context, vaultID uuid.UUID, caller domain.Owner, proposalID int64) error
	Revoke(ctx context.Context, vaultID uuid.UUID, caller domain.Owner, proposalID int64) error
	GetProposal(ctx context.Context, vaultID uuid.UUID, proposalID int64) (*domain.Proposal, error)
	ListProposals(ctx context.Context, vaultID uuid.UUID) ([]domain.Proposal, error)
}

// SubmitRequest holds validated input for proposal submission.
type SubmitRequest struct {
	VaultID     uuid.UUID
	Caller      domain.Owner
	Destination string
	Amount      int64
	Payload     []byte
}

// ExecutionOutcome reports how an execute attempt ended. A declined release
// is an outcome, not an error: the proposal stays retryable.
type ExecutionOutcome string

const (
	OutcomeExecuted ExecutionOutcome = "EXECUTED"
	OutcomeFailed   ExecutionOutcome = "FAILED"
)

// ExecutionResult describes the result of a successful Execute call.
type ExecutionResult struct {
	ProposalID  int64
	Outcome     ExecutionOutcome
	Destination string
	Amount      int64
}

// ExecutionService validates a quorum-approved proposal and performs the
// release exactly once.
type ExecutionService interface {
	Execute(ctx context.Context, vaultID uuid.UUID, caller domain.Owner, proposalID int64) (*ExecutionResult, error)
}

// SyncResult describes a reconciliation attempt.
type SyncResult struct {
	Reconciled         bool
	Amount             int64
	ForcedDepositCount int64
}

// TreasuryService covers deposits and reconciliation of tracked against
// actual custody balance.
type TreasuryService interface {
	Deposit(ctx context.Context, vaultID uuid.UUID, amount int64) (*domain.Vault, error)
	SyncForcedDeposits(ctx context.Context, vaultID uuid.UUID) (*SyncResult, error)
	UntrackedBalance(ctx context.Context, vaultID uuid.UUID) (int64, error)
}
