package postgres

import (
	"context"
	"errors"
	"fmt"

	"multisig-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProposalRepo implements ports.ProposalRepository. Proposals are keyed by
// (vault_id, id) where id is the per-vault sequence assigned at submit time.
// Rows are append-only: approvals and the executed flag mutate, rows never
// disappear.
type ProposalRepo struct {
	pool Pool
}

// NewProposalRepo creates a new ProposalRepo.
func NewProposalRepo(pool Pool) *ProposalRepo {
	return &ProposalRepo{pool: pool}
}

// Create inserts a new proposal within a transaction.
func (r *ProposalRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Proposal) error {
	query := `INSERT INTO proposals (vault_id, id, destination, amount, payload, approvals, executed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		p.VaultID, p.ID, p.Destination, p.Amount, p.Payload,
		ownersToStrings(p.Approvals), p.Executed, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proposal: %w", err)
	}
	return nil
}

// GetByID fetches a proposal (without locking).
func (r *ProposalRepo) GetByID(ctx context.Context, vaultID uuid.UUID, id int64) (*domain.Proposal, error) {
	query := `SELECT vault_id, id, destination, amount, payload, approvals, executed, created_at, updated_at
		FROM proposals WHERE vault_id = $1 AND id = $2`

	p, err := scanProposal(r.pool.QueryRow(ctx, query, vaultID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal by id: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate fetches a proposal with pessimistic locking.
// This MUST be called within a transaction.
func (r *ProposalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64) (*domain.Proposal, error) {
	query := `SELECT vault_id, id, destination, amount, payload, approvals, executed, created_at, updated_at
		FROM proposals WHERE vault_id = $1 AND id = $2 FOR UPDATE`

	p, err := scanProposal(tx.QueryRow(ctx, query, vaultID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal for update: %w", err)
	}
	return p, nil
}

// AddApproval appends an approver to the approval set within a transaction.
// The caller is responsible for the not-already-approved check; the guard
// here only keeps the array a set under concurrent retries.
func (r *ProposalRepo) AddApproval(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64, approver domain.Owner) error {
	query := `UPDATE proposals SET approvals = array_append(approvals, $1), updated_at = NOW()
		WHERE vault_id = $2 AND id = $3 AND NOT ($1 = ANY(approvals))`

	tag, err := tx.Exec(ctx, query, string(approver), vaultID, id)
	if err != nil {
		return fmt.Errorf("add approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("approval not recorded for proposal %d", id)
	}
	return nil
}

// RemoveApproval removes an approver from the approval set within a
// transaction.
func (r *ProposalRepo) RemoveApproval(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64, approver domain.Owner) error {
	query := `UPDATE proposals SET approvals = array_remove(approvals, $1), updated_at = NOW()
		WHERE vault_id = $2 AND id = $3`

	tag, err := tx.Exec(ctx, query, string(approver), vaultID, id)
	if err != nil {
		return fmt.Errorf("remove approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("proposal not found: %d", id)
	}
	return nil
}

// SetExecuted flips the executed flag within a transaction. Both directions
// are legal: true before the release effect, back to false after an
// ordinary release failure.
func (r *ProposalRepo) SetExecuted(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64, executed bool) error {
	query := `UPDATE proposals SET executed = $1, updated_at = NOW() WHERE vault_id = $2 AND id = $3`

	tag, err := tx.Exec(ctx, query, executed, vaultID, id)
	if err != nil {
		return fmt.Errorf("set executed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("proposal not found: %d", id)
	}
	return nil
}

// ListByVault returns all proposals of a vault ordered by id.
func (r *ProposalRepo) ListByVault(ctx context.Context, vaultID uuid.UUID) ([]domain.Proposal, error) {
	query := `SELECT vault_id, id, destination, amount, payload, approvals, executed, created_at, updated_at
		FROM proposals WHERE vault_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var proposals []domain.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		proposals = append(proposals, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proposals: %w", err)
	}
	return proposals, nil
}

func scanProposal(row pgx.Row) (*domain.Proposal, error) {
	p := &domain.Proposal{}
	var approvals []string
	err := row.Scan(
		&p.VaultID, &p.ID, &p.Destination, &p.Amount, &p.Payload,
		&approvals, &p.Executed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Approvals = stringsToOwners(approvals)
	return p, nil
}
