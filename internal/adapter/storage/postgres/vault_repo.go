package postgres

import (
	"context"
	"errors"
	"fmt"

	"multisig-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VaultRepo implements ports.VaultRepository.
type VaultRepo struct {
	pool Pool
}

// NewVaultRepo creates a new VaultRepo.
func NewVaultRepo(pool Pool) *VaultRepo {
	return &VaultRepo{pool: pool}
}

// Create inserts a new vault into the database.
func (r *VaultRepo) Create(ctx context.Context, v *domain.Vault) error {
	query := `INSERT INTO vaults (id, owners, threshold, tracked_balance, forced_deposit_count, next_proposal_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		v.ID, ownersToStrings(v.Owners), v.Threshold, v.TrackedBalance,
		v.ForcedDepositCount, v.NextProposalID, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vault: %w", err)
	}
	return nil
}

// GetByID fetches a vault by its UUID (without locking).
func (r *VaultRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vault, error) {
	query := `SELECT id, owners, threshold, tracked_balance, forced_deposit_count, next_proposal_id, created_at, updated_at
		FROM vaults WHERE id = $1`

	v, err := scanVault(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vault by id: %w", err)
	}
	return v, nil
}

// GetByIDForUpdate fetches a vault by ID with pessimistic locking. The row
// lock is the single-writer discipline: every mutation of a vault starts
// here. This MUST be called within a transaction.
func (r *VaultRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Vault, error) {
	query := `SELECT id, owners, threshold, tracked_balance, forced_deposit_count, next_proposal_id, created_at, updated_at
		FROM vaults WHERE id = $1 FOR UPDATE`

	v, err := scanVault(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vault for update: %w", err)
	}
	return v, nil
}

// UpdateMembership replaces the owner set and threshold within a transaction.
func (r *VaultRepo) UpdateMembership(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, owners []domain.Owner, threshold int) error {
	query := `UPDATE vaults SET owners = $1, threshold = $2, updated_at = NOW() WHERE id = $3`

	tag, err := tx.Exec(ctx, query, ownersToStrings(owners), threshold, vaultID)
	if err != nil {
		return fmt.Errorf("update vault membership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vault not found: %s", vaultID)
	}
	return nil
}

// UpdateAccounting updates the tracked balance and forced deposit counter
// within a transaction.
func (r *VaultRepo) UpdateAccounting(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, trackedBalance, forcedDepositCount int64) error {
	query := `UPDATE vaults SET tracked_balance = $1, forced_deposit_count = $2, updated_at = NOW() WHERE id = $3`

	tag, err := tx.Exec(ctx, query, trackedBalance, forcedDepositCount, vaultID)
	if err != nil {
		return fmt.Errorf("update vault accounting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vault not found: %s", vaultID)
	}
	return nil
}

// BumpProposalSeq advances the proposal id counter within a transaction.
// The counter only ever moves forward; ids are never reused.
func (r *VaultRepo) BumpProposalSeq(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, next int64) error {
	query := `UPDATE vaults SET next_proposal_id = $1, updated_at = NOW() WHERE id = $2 AND next_proposal_id < $1`

	tag, err := tx.Exec(ctx, query, next, vaultID)
	if err != nil {
		return fmt.Errorf("bump proposal seq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("proposal seq not advanced for vault %s", vaultID)
	}
	return nil
}

func scanVault(row pgx.Row) (*domain.Vault, error) {
	v := &domain.Vault{}
	var owners []string
	err := row.Scan(
		&v.ID, &owners, &v.Threshold, &v.TrackedBalance,
		&v.ForcedDepositCount, &v.NextProposalID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Owners = stringsToOwners(owners)
	return v, nil
}

func ownersToStrings(owners []domain.Owner) []string {
	out := make([]string, len(owners))
	for i, o := range owners {
		out[i] = string(o)
	}
	return out
}

func stringsToOwners(ss []string) []domain.Owner {
	out := make([]domain.Owner, len(ss))
	for i, s := range ss {
		out[i] = domain.Owner(s)
	}
	return out
}
