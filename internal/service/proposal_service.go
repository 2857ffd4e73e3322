package service

import (
	"context"
	"fmt"
	"time"

	"multisig-vault/internal/core/domain"
	"multisig-vault/internal/core/ports"
	"multisig-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ProposalServiceImpl implements ports.ProposalService: the ledger of
// proposed transfers and their per-owner approval marks.
type ProposalServiceImpl struct {
	vaultRepo    ports.VaultRepository
	proposalRepo ports.ProposalRepository
	transactor   ports.DBTransactor
	events       ports.EventPublisher
	log          zerolog.Logger
}

// NewProposalService creates a new ProposalServiceImpl.
func NewProposalService(
	vaultRepo ports.VaultRepository,
	proposalRepo ports.ProposalRepository,
	transactor ports.DBTransactor,
	events ports.EventPublisher,
	log zerolog.Logger,
) *ProposalServiceImpl {
	return &ProposalServiceImpl{
		vaultRepo:    vaultRepo,
		proposalRepo: proposalRepo,
		transactor:   transactor,
		events:       events,
		log:          log,
	}
}

// Submit records a new proposed transfer and returns it with its assigned
// id. Submission is the only way a proposal comes into existence.
func (s *ProposalServiceImpl) Submit(ctx context.Context, req ports.SubmitRequest) (*domain.Proposal, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	vault, err := s.vaultRepo.GetByIDForUpdate(ctx, dbTx, req.VaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock vault: %w", err))
	}
	if vault == nil {
		return nil, apperror.ErrNotFound("vault")
	}

	if !vault.HasOwner(req.Caller) {
		return nil, apperror.ErrNotOwner()
	}
	if req.Destination == "" {
		return nil, apperror.ErrInvalidDestination()
	}
	if req.Amount < 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	now := time.Now().UTC()
	proposal := &domain.Proposal{
		ID:          vault.NextProposalID,
		VaultID:     req.VaultID,
		Destination: req.Destination,
		Amount:      req.Amount,
		Payload:     req.Payload,
		Approvals:   []domain.Owner{},
		Executed:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.proposalRepo.Create(ctx, dbTx, proposal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create proposal: %w", err))
	}
	if err := s.vaultRepo.BumpProposalSeq(ctx, dbTx, req.VaultID, proposal.ID+1); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("bump proposal seq: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	event := domain.NewVaultEvent(req.VaultID, domain.EventProposalSubmitted, req.Caller)
	event.ProposalID = &proposal.ID
	event.Amount = &proposal.Amount
	s.publish(ctx, event)

	s.log.Info().
		Str("vault_id", req.VaultID.String()).
		Int64("proposal_id", proposal.ID).
		Int64("amount", req.Amount).
		Msg("proposal submitted")

	return proposal, nil
}

// Approve marks the caller's approval on a pending proposal.
func (s *ProposalServiceImpl) Approve(ctx context.Context, vaultID uuid.UUID, caller domain.Owner, proposalID int64) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	proposal, err := s.loadPending(ctx, dbTx, vaultID, caller, proposalID)
	if err != nil {
		return err
	}
	if proposal.HasApproval(caller) {
		return apperror.ErrAlreadyApproved()
	}

	if err := s.proposalRepo.AddApproval(ctx, dbTx, vaultID, proposalID, caller); err != nil {
		return apperror.InternalError(fmt.Errorf("add approval: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	event := domain.NewVaultEvent(vaultID, domain.EventProposalApproved, caller)
	event.ProposalID = &proposalID
	s.publish(ctx, event)

	s.log.Info().
		Str("vault_id", vaultID.String()).
		Int64("proposal_id", proposalID).
		Int("approvals", proposal.ApprovalCount()+1).
		Msg("proposal approved")

	return nil
}

// Revoke withdraws the caller's approval. Allowed at any time before the
// proposal executes; nothing locks an approval in.
func (s *ProposalServiceImpl) Revoke(ctx context.Context, vaultID uuid.UUID, caller domain.Owner, proposalID int64) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	proposal, err := s.loadPending(ctx, dbTx, vaultID, caller, proposalID)
	if err != nil {
		return err
	}
	if !proposal.HasApproval(caller) {
		return apperror.ErrNotApproved()
	}

	if err := s.proposalRepo.RemoveApproval(ctx, dbTx, vaultID, proposalID, caller); err != nil {
		return apperror.InternalError(fmt.Errorf("remove approval: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	event := domain.NewVaultEvent(vaultID, domain.EventApprovalRevoked, caller)
	event.ProposalID = &proposalID
	s.publish(ctx, event)

	s.log.Info().
		Str("vault_id", vaultID.String()).
		Int64("proposal_id", proposalID).
		Msg("approval revoked")

	return nil
}

// GetProposal returns a read-only snapshot of one proposal.
func (s *ProposalServiceImpl) GetProposal(ctx context.Context, vaultID uuid.UUID, proposalID int64) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, vaultID, proposalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get proposal: %w", err))
	}
	if proposal == nil {
		return nil, apperror.ErrUnknownProposal()
	}
	return proposal, nil
}

// ListProposals returns every proposal of the vault in id order.
func (s *ProposalServiceImpl) ListProposals(ctx context.Context, vaultID uuid.UUID) ([]domain.Proposal, error) {
	proposals, err := s.proposalRepo.ListByVault(ctx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list proposals: %w", err))
	}
	return proposals, nil
}

// loadPending runs the checks shared by Approve and Revoke: caller is an
// owner, the id was ever assigned, and the proposal has not executed. The
// proposal row is locked for the duration of the transaction.
func (s *ProposalServiceImpl) loadPending(ctx context.Context, dbTx pgx.Tx, vaultID uuid.UUID, caller domain.Owner, proposalID int64) (*domain.Proposal, error) {
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
		// The seq says the id was assigned; a missing row is corruption.
		return nil, apperror.InternalError(fmt.Errorf("proposal %d missing despite seq %d", proposalID, vault.NextProposalID))
	}
	if proposal.Executed {
		return nil, apperror.ErrAlreadyExecuted()
	}
	return proposal, nil
}

func (s *ProposalServiceImpl) publish(ctx context.Context, event domain.VaultEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("type", string(event.Type)).Msg("failed to publish vault event")
	}
}
