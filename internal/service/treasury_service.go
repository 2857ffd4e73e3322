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

// TreasuryServiceImpl implements ports.TreasuryService: the announced
// deposit path and the reconciliation of tracked against actual custody
// balance.
type TreasuryServiceImpl struct {
	vaultRepo  ports.VaultRepository
	transactor ports.DBTransactor
	custody    ports.CustodyGateway
	events     ports.EventPublisher
	log        zerolog.Logger
}

// NewTreasuryService creates a new TreasuryServiceImpl.
func NewTreasuryService(
	vaultRepo ports.VaultRepository,
	transactor ports.DBTransactor,
	custody ports.CustodyGateway,
	events ports.EventPublisher,
	log zerolog.Logger,
) *TreasuryServiceImpl {
	return &TreasuryServiceImpl{
		vaultRepo:  vaultRepo,
		transactor: transactor,
		custody:    custody,
		events:     events,
		log:        log,
	}
}

// Deposit records an announced deposit of a strictly positive amount and
// returns the vault with its updated tracked balance. Anyone may deposit;
// ownership is not required.
func (s *TreasuryServiceImpl) Deposit(ctx context.Context, vaultID uuid.UUID, amount int64) (*domain.Vault, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

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

	vault.TrackedBalance += amount
	if err := s.vaultRepo.UpdateAccounting(ctx, dbTx, vaultID, vault.TrackedBalance, vault.ForcedDepositCount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update accounting: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	event := domain.NewVaultEvent(vaultID, domain.EventFundsReceived, "")
	event.Amount = &amount
	s.publish(ctx, event)

	s.log.Info().
		Str("vault_id", vaultID.String()).
		Int64("amount", amount).
		Int64("tracked_balance", vault.TrackedBalance).
		Msg("deposit recorded")

	return vault, nil
}

// SyncForcedDeposits folds any balance that arrived outside the deposit
// path into the tracked balance. When tracked and actual already agree the
// call is a no-op reporting Reconciled=false; otherwise the difference is
// absorbed and the forced-deposit counter advances by one.
func (s *TreasuryServiceImpl) SyncForcedDeposits(ctx context.Context, vaultID uuid.UUID) (*ports.SyncResult, error) {
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

	actual, err := s.custody.Balance(ctx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("custody balance: %w", err))
	}

	diff := actual - vault.TrackedBalance
	if diff <= 0 {
		// Tracked never exceeds actual except transiently around a
		// release; either way there is nothing to absorb.
		return &ports.SyncResult{
			Reconciled:         false,
			Amount:             0,
			ForcedDepositCount: vault.ForcedDepositCount,
		}, nil
	}

	newCount := vault.ForcedDepositCount + 1
	if err := s.vaultRepo.UpdateAccounting(ctx, dbTx, vaultID, actual, newCount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update accounting: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	event := domain.NewVaultEvent(vaultID, domain.EventForcedDepositSynced, "")
	event.Amount = &diff
	event.SyncCount = &newCount
	s.publish(ctx, event)

	s.log.Info().
		Str("vault_id", vaultID.String()).
		Int64("amount", diff).
		Int64("forced_deposit_count", newCount).
		Msg("forced deposits reconciled")

	return &ports.SyncResult{
		Reconciled:         true,
		Amount:             diff,
		ForcedDepositCount: newCount,
	}, nil
}

// UntrackedBalance reports the custody balance not yet folded into the
// tracked balance. Read-only; no reconciliation happens.
func (s *TreasuryServiceImpl) UntrackedBalance(ctx context.Context, vaultID uuid.UUID) (int64, error) {
	vault, err := s.vaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get vault: %w", err))
	}
	if vault == nil {
		return 0, apperror.ErrNotFound("vault")
	}

	actual, err := s.custody.Balance(ctx, vaultID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("custody balance: %w", err))
	}
	return actual - vault.TrackedBalance, nil
}

func (s *TreasuryServiceImpl) publish(ctx context.Context, event domain.VaultEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("type", string(event.Type)).Msg("failed to publish vault event")
	}
}
