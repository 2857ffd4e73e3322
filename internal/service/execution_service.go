package service

import (
	"context"
	"fmt"

	"multisig-vault/internal/core/domain"
	"multisig-vault/internal/core/ports"
	"multisig-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ExecutionServiceImpl implements ports.ExecutionService.
//
// Execute runs in three transactions rather than one. The executed flag is
// validated and set in the first transaction and COMMITTED before the
// custody release is invoked: the release may re-enter any public operation
// (including Execute on the same id) before returning, and a reentrant
// Execute must observe executed=true and fail the already-executed check.
// Holding a single transaction across the release would both hide the flag
// from the reentrant call and hold the vault row lock into foreign code.
type ExecutionServiceImpl struct {
	vaultRepo    ports.VaultRepository
	proposalRepo ports.ProposalRepository
	transactor   ports.DBTransactor
	custody      ports.CustodyGateway
	events       ports.EventPublisher
	log          zerolog.Logger
}

// NewExecutionService creates a new ExecutionServiceImpl.
func NewExecutionService(
	vaultRepo ports.VaultRepository,
	proposalRepo ports.ProposalRepository,
	transactor ports.DBTransactor,
	custody ports.CustodyGateway,
	events ports.EventPublisher,
	log zerolog.Logger,
) *ExecutionServiceImpl {
	return &ExecutionServiceImpl{
		vaultRepo:    vaultRepo,
		proposalRepo: proposalRepo,
		transactor:   transactor,
		custody:      custody,
		events:       events,
		log:          log,
	}
}

// Execute validates a quorum-approved proposal and releases its funds
// exactly once. An ordinary release decline is reported as OutcomeFailed,
// not as an error: the proposal's executed flag is reset and it stays
// retryable with its approvals intact. Only fatal custody faults surface as
// errors, and those leave executed=true committed.
func (s *ExecutionServiceImpl) Execute(ctx context.Context, vaultID uuid.UUID, caller domain.Owner, proposalID int64) (*ports.ExecutionResult, error) {
	proposal, err := s.markExecuting(ctx, vaultID, caller, proposalID)
	if err != nil {
		return nil, err
	}

	released, relErr := s.custody.Release(ctx, vaultID, proposal.Destination, proposal.Amount, proposal.Payload)
	if relErr != nil {
		// Fatal fault, not an ordinary decline: executed=true stays
		// committed with no funds moved. Surfaced loudly; resolving it
		// needs operator intervention.
		s.log.Error().Err(relErr).
			Str("vault_id", vaultID.String()).
			Int64("proposal_id", proposalID).
			Msg("custody release fault, proposal left marked executed")
		return nil, apperror.InternalError(fmt.Errorf("custody release: %w", relErr))
	}

	if !released {
		if err := s.resetExecuted(ctx, vaultID, proposalID); err != nil {
			return nil, err
		}

		event := domain.NewVaultEvent(vaultID, domain.EventProposalExecutionFailed, caller)
		event.ProposalID = &proposalID
		event.Amount = &proposal.Amount
		s.publish(ctx, event)

		s.log.Warn().
			Str("vault_id", vaultID.String()).
			Int64("proposal_id", proposalID).
			Msg("release declined, proposal reopened for retry")

		return &ports.ExecutionResult{
			ProposalID:  proposalID,
			Outcome:     ports.OutcomeFailed,
			Destination: proposal.Destination,
			Amount:      proposal.Amount,
		}, nil
	}

	if err := s.settle(ctx, vaultID, proposal.Amount); err != nil {
		return nil, err
	}

	event := domain.NewVaultEvent(vaultID, domain.EventProposalExecuted, caller)
	event.ProposalID = &proposalID
	event.Amount = &proposal.Amount
	s.publish(ctx, event)

	s.log.Info().
		Str("vault_id", vaultID.String()).
		Int64("proposal_id", proposalID).
		Int64("amount", proposal.Amount).
		Str("destination", proposal.Destination).
		Msg("proposal executed")

	return &ports.ExecutionResult{
		ProposalID:  proposalID,
		Outcome:     ports.OutcomeExecuted,
		Destination: proposal.Destination,
		Amount:      proposal.Amount,
	}, nil
}

// markExecuting runs the full precondition chain in a fixed order (first
// failure wins, no partial effect) and commits executed=true.
func (s *ExecutionServiceImpl) markExecuting(ctx context.Context, vaultID uuid.UUID, caller domain.Owner, proposalID int64) (*domain.Proposal, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	vault, err := s.vaultRepo.GetByIDForUpdate(ctx, dbTx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if vault == nil {
		return nil, apperror.ErrNotFound("vault")
	}

	if !vault.HasOwner(caller) {
		return nil, apperror.ErrNotOwner()
	}
	if !vault.KnowsProposal(proposalID) {
		return nil, apperror.ErrUnknownProposal()
	}

	proposal, err := s.proposalRepo.GetByIDForUpdate(ctx, dbTx, vaultID, proposalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock proposal: %w", err))
	}
	if proposal == nil {
		return nil, apperror.InternalError(fmt.Errorf("proposal %d missing despite seq %d", proposalID, vault.NextProposalID))
	}

	if proposal.Executed {
		return nil, apperror.ErrAlreadyExecuted()
	}
	if !proposal.HasApproval(caller) {
		return nil, apperror.ErrNotApproved()
	}
	// Quorum is judged against the threshold of right now, not the one in
	// force at submit time. The approval set is taken as recorded; approvers
	// since removed from the vault still count.
	if proposal.ApprovalCount() < vault.Threshold {
		return nil, apperror.ErrInsufficientApprovals()
	}

	actual, err := s.custody.Balance(ctx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("custody balance: %w", err))
	}
	if actual < proposal.Amount {
		return nil, apperror.ErrInsufficientFunds()
	}

	if err := s.proposalRepo.SetExecuted(ctx, dbTx, vaultID, proposalID, true); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark executed: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return proposal, nil
}

// resetExecuted reopens a proposal after an ordinary release decline.
// Approvals are untouched.
func (s *ExecutionServiceImpl) resetExecuted(ctx context.Context, vaultID uuid.UUID, proposalID int64) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.proposalRepo.SetExecuted(ctx, dbTx, vaultID, proposalID, false); err != nil {
		return apperror.InternalError(fmt.Errorf("reset executed: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// settle deducts a released amount from the tracked balance, floored at
// zero: the amount may exceed tracked funds when the custody balance grew
// through reconciled forced deposits.
func (s *ExecutionServiceImpl) settle(ctx context.Context, vaultID uuid.UUID, amount int64) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	vault, err := s.vaultRepo.GetByIDForUpdate(ctx, dbTx, vaultID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if vault == nil {
		return apperror.ErrNotFound("vault")
	}

	newBalance := vault.TrackedBalance - amount
	if newBalance < 0 {
		newBalance = 0
	}

	if err := s.vaultRepo.UpdateAccounting(ctx, dbTx, vaultID, newBalance, vault.ForcedDepositCount); err != nil {
		return apperror.InternalError(fmt.Errorf("update accounting: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (s *ExecutionServiceImpl) publish(ctx context.Context, event domain.VaultEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("type", string(event.Type)).Msg("failed to publish vault event")
	}
}
