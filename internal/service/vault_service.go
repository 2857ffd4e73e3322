package service

import (
	"context"
	"fmt"
	"time"

	"multisig-vault/internal/core/domain"
	"multisig-vault/internal/core/ports"
	"multisig-vault/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VaultServiceImpl implements ports.VaultService.
type VaultServiceImpl struct {
	vaultRepo ports.VaultRepository
	custody   ports.CustodyGateway
	log       zerolog.Logger
}

// NewVaultService creates a new VaultServiceImpl.
func NewVaultService(vaultRepo ports.VaultRepository, custody ports.CustodyGateway, log zerolog.Logger) *VaultServiceImpl {
	return &VaultServiceImpl{
		vaultRepo: vaultRepo,
		custody:   custody,
		log:       log,
	}
}

// Initialize creates a vault from the deployer's owner list and threshold.
func (s *VaultServiceImpl) Initialize(ctx context.Context, req ports.InitializeRequest) (*domain.Vault, error) {
	if len(req.Owners) == 0 {
		return nil, apperror.Validation("at least one owner is required")
	}

	seen := make(map[domain.Owner]struct{}, len(req.Owners))
	for _, o := range req.Owners {
		if !o.Valid() {
			return nil, apperror.ErrInvalidIdentity()
		}
		if _, dup := seen[o]; dup {
			return nil, apperror.ErrDuplicateOwner()
		}
		seen[o] = struct{}{}
	}

	if req.Threshold < 1 || req.Threshold > len(req.Owners) {
		return nil, apperror.ErrInvalidThreshold()
	}

	now := time.Now().UTC()
	vault := &domain.Vault{
		ID:             uuid.New(),
		Owners:         append([]domain.Owner(nil), req.Owners...),
		Threshold:      req.Threshold,
		NextProposalID: 0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.vaultRepo.Create(ctx, vault); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create vault: %w", err))
	}

	s.log.Info().
		Str("vault_id", vault.ID.String()).
		Int("owners", len(vault.Owners)).
		Int("threshold", vault.Threshold).
		Msg("vault initialized")

	return vault, nil
}

// GetVault returns a read-only snapshot of the vault.
func (s *VaultServiceImpl) GetVault(ctx context.Context, vaultID uuid.UUID) (*domain.Vault, error) {
	vault, err := s.vaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get vault: %w", err))
	}
	if vault == nil {
		return nil, apperror.ErrNotFound("vault")
	}
	return vault, nil
}

// ListOwners returns the current owner set. Order carries no meaning.
func (s *VaultServiceImpl) ListOwners(ctx context.Context, vaultID uuid.UUID) ([]domain.Owner, error) {
	vault, err := s.GetVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	return vault.Owners, nil
}

// Balances returns the tracked, actual and untracked balance views.
func (s *VaultServiceImpl) Balances(ctx context.Context, vaultID uuid.UUID) (*ports.VaultBalances, error) {
	vault, err := s.GetVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	actual, err := s.custody.Balance(ctx, vaultID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("custody balance: %w", err))
	}

	return &ports.VaultBalances{
		Tracked:   vault.TrackedBalance,
		Actual:    actual,
		Untracked: actual - vault.TrackedBalance,
	}, nil
}
