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

// MembershipServiceImpl implements ports.MembershipService: the owner set
// and the approval threshold, mutated under the vault row lock.
type MembershipServiceImpl struct {
	vaultRepo  ports.VaultRepository
	transactor ports.DBTransactor
	events     ports.EventPublisher
	log        zerolog.Logger
}

// NewMembershipService creates a new MembershipServiceImpl.
func NewMembershipService(
	vaultRepo ports.VaultRepository,
	transactor ports.DBTransactor,
	events ports.EventPublisher,
	log zerolog.Logger,
) *MembershipServiceImpl {
	return &MembershipServiceImpl{
		vaultRepo:  vaultRepo,
		transactor: transactor,
		events:     events,
		log:        log,
	}
}

// AddOwner adds identity to the owner set. The threshold is unchanged.
func (s *MembershipServiceImpl) AddOwner(ctx context.Context, vaultID uuid.UUID, caller, identity domain.Owner) error {
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

	if !vault.HasOwner(caller) {
		return apperror.ErrNotOwner()
	}
	if !identity.Valid() {
		return apperror.ErrInvalidIdentity()
	}
	if vault.HasOwner(identity) {
		return apperror.ErrDuplicateOwner()
	}

	owners := append(append([]domain.Owner(nil), vault.Owners...), identity)
	if err := s.vaultRepo.UpdateMembership(ctx, dbTx, vaultID, owners, vault.Threshold); err != nil {
		return apperror.InternalError(fmt.Errorf("update membership: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	event := domain.NewVaultEvent(vaultID, domain.EventOwnerAdded, caller)
	event.Identity = identity
	s.publish(ctx, event)

	s.log.Info().
		Str("vault_id", vaultID.String()).
		Str("identity", string(identity)).
		Int("owners", len(owners)).
		Msg("owner added")

	return nil
}

// RemoveOwner removes identity from the owner set. The removal is refused
// when it would leave fewer owners than the threshold, or no owners at all.
// The order of the remaining owners is unspecified: removal swaps the last
// element into the gap.
func (s *MembershipServiceImpl) RemoveOwner(ctx context.Context, vaultID uuid.UUID, caller, identity domain.Owner) error {
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

	if !vault.HasOwner(caller) {
		return apperror.ErrNotOwner()
	}
	if !vault.HasOwner(identity) {
		return apperror.ErrUnknownOwner()
	}
	if !vault.CanRemoveOwner() {
		return apperror.ErrThresholdViolation()
	}

	owners := append([]domain.Owner(nil), vault.Owners...)
	for i, o := range owners {
		if o == identity {
			owners[i] = owners[len(owners)-1]
			owners = owners[:len(owners)-1]
			break
		}
	}

	if err := s.vaultRepo.UpdateMembership(ctx, dbTx, vaultID, owners, vault.Threshold); err != nil {
		return apperror.InternalError(fmt.Errorf("update membership: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	event := domain.NewVaultEvent(vaultID, domain.EventOwnerRemoved, caller)
	event.Identity = identity
	s.publish(ctx, event)

	s.log.Info().
		Str("vault_id", vaultID.String()).
		Str("identity", string(identity)).
		Int("owners", len(owners)).
		Msg("owner removed")

	return nil
}

// ChangeThreshold updates the approval threshold. Setting the current value
// again is rejected rather than silently accepted.
func (s *MembershipServiceImpl) ChangeThreshold(ctx context.Context, vaultID uuid.UUID, caller domain.Owner, newThreshold int) error {
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

	if !vault.HasOwner(caller) {
		return apperror.ErrNotOwner()
	}
	if !vault.ValidThreshold(newThreshold) || newThreshold == vault.Threshold {
		return apperror.ErrInvalidThreshold()
	}

	if err := s.vaultRepo.UpdateMembership(ctx, dbTx, vaultID, vault.Owners, newThreshold); err != nil {
		return apperror.InternalError(fmt.Errorf("update threshold: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	event := domain.NewVaultEvent(vaultID, domain.EventThresholdChanged, caller)
	event.Threshold = &newThreshold
	s.publish(ctx, event)

	s.log.Info().
		Str("vault_id", vaultID.String()).
		Int("threshold", newThreshold).
		Msg("threshold changed")

	return nil
}

// publish delivers an event to observers. Best-effort: state has already
// committed, so a publish failure is only logged.
func (s *MembershipServiceImpl) publish(ctx context.Context, event domain.VaultEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("type", string(event.Type)).Msg("failed to publish vault event")
	}
}
