package ports

import (
	"context"

	"multisig-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VaultRepository defines persistence operations for vault aggregates.
// Methods accepting pgx.Tx run inside transaction blocks; GetByIDForUpdate
// takes the row lock that serializes all mutations of one vault.
type VaultRepository interface {
	Create(ctx context.Context, vault *domain.Vault) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vault, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Vault, error)
	UpdateMembership(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, owners []domain.Owner, threshold int) error
	UpdateAccounting(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, trackedBalance, forcedDepositCount int64) error
	BumpProposalSeq(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, next int64) error
}

// ProposalRepository defines persistence operations for proposals and their
// approval sets. Proposals are append-only: created once, never deleted.
type ProposalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, proposal *domain.Proposal) error
	GetByID(ctx context.Context, vaultID uuid.UUID, id int64) (*domain.Proposal, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64) (*domain.Proposal, error)
	AddApproval(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64, approver domain.Owner) error
	RemoveApproval(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64, approver domain.Owner) error
	SetExecuted(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64, executed bool) error
	ListByVault(ctx context.Context, vaultID uuid.UUID) ([]domain.Proposal, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
