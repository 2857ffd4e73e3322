package service

import (
	"context"
	"errors"
	"testing"

	"multisig-vault/internal/core/domain"
	"multisig-vault/internal/core/ports"
	"multisig-vault/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type executionTestDeps struct {
	svc          *ExecutionServiceImpl
	vaultRepo    *mocks.MockVaultRepository
	proposalRepo *mocks.MockProposalRepository
	transactor   *mocks.MockDBTransactor
	custody      *mocks.MockCustodyGateway
	events       *mocks.MockEventPublisher
	ctrl         *gomock.Controller
}

func setupExecutionService(t *testing.T) *executionTestDeps {
	ctrl := gomock.NewController(t)
	d := &executionTestDeps{
		vaultRepo:    mocks.NewMockVaultRepository(ctrl),
		proposalRepo: mocks.NewMockProposalRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		custody:      mocks.NewMockCustodyGateway(ctrl),
		events:       mocks.NewMockEventPublisher(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewExecutionService(
		d.vaultRepo, d.proposalRepo, d.transactor,
		d.custody, d.events, zerolog.Nop(),
	)
	return d
}

func executionVault(id uuid.UUID) *domain.Vault {
	return &domain.Vault{
		ID:             id,
		Owners:         []domain.Owner{"alice", "bob", "carol"},
		Threshold:      2,
		TrackedBalance: 1000,
		NextProposalID: 1,
	}
}

func pendingProposal(vaultID uuid.UUID) *domain.Proposal {
	return &domain.Proposal{
		ID:          0,
		VaultID:     vaultID,
		Destination: "dest-1",
		Amount:      400,
		Approvals:   []domain.Owner{"alice", "bob"},
		Executed:    false,
	}
}

func TestExecutionService_Execute_Success(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}
	vault := executionVault(vaultID)
	proposal := pendingProposal(vaultID)

	// Mark transaction: validate and commit executed=true.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(vault, nil)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(proposal, nil)
	d.custody.EXPECT().Balance(ctx, vaultID).Return(int64(1000), nil)
	d.proposalRepo.EXPECT().SetExecuted(ctx, tx, vaultID, int64(0), true).Return(nil)
	// Release with the proposal's recorded parameters.
	d.custody.EXPECT().Release(ctx, vaultID, "dest-1", int64(400), nil).Return(true, nil)
	// Settle transaction: tracked balance 1000 -> 600.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(vault, nil)
	d.vaultRepo.EXPECT().UpdateAccounting(ctx, tx, vaultID, int64(600), int64(0)).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, ports.OutcomeExecuted, result.Outcome)
	assert.Equal(t, int64(0), result.ProposalID)
	assert.Equal(t, "dest-1", result.Destination)
	assert.Equal(t, int64(400), result.Amount)
}

// The executed flag must be committed before the custody release runs, so a
// reentrant Execute on the same id sees an already-executed proposal.
func TestExecutionService_Execute_MarksBeforeRelease(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}
	vault := executionVault(vaultID)
	proposal := pendingProposal(vaultID)

	marked := false

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(vault, nil).Times(2)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(proposal, nil)
	d.custody.EXPECT().Balance(ctx, vaultID).Return(int64(1000), nil)
	d.proposalRepo.EXPECT().
		SetExecuted(ctx, tx, vaultID, int64(0), true).
		DoAndReturn(func(context.Context, any, uuid.UUID, int64, bool) error {
			marked = true
			return nil
		})
	d.custody.EXPECT().
		Release(ctx, vaultID, "dest-1", int64(400), nil).
		DoAndReturn(func(context.Context, uuid.UUID, string, int64, []byte) (bool, error) {
			assert.True(t, marked, "release invoked before executed flag was set")
			return true, nil
		})
	d.vaultRepo.EXPECT().UpdateAccounting(ctx, tx, vaultID, int64(600), int64(0)).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	_, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	require.NoError(t, err)
}

func TestExecutionService_Execute_DeclinedReleaseReopensProposal(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}
	vault := executionVault(vaultID)
	proposal := pendingProposal(vaultID)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(vault, nil)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(proposal, nil)
	d.custody.EXPECT().Balance(ctx, vaultID).Return(int64(1000), nil)
	d.proposalRepo.EXPECT().SetExecuted(ctx, tx, vaultID, int64(0), true).Return(nil)
	d.custody.EXPECT().Release(ctx, vaultID, "dest-1", int64(400), nil).Return(false, nil)
	// The flag is reset: the proposal stays retryable with approvals intact.
	d.proposalRepo.EXPECT().SetExecuted(ctx, tx, vaultID, int64(0), false).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, event domain.VaultEvent) error {
		assert.Equal(t, domain.EventProposalExecutionFailed, event.Type)
		return nil
	})

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	require.NoError(t, err, "a declined release is an outcome, not an error")
	require.NotNil(t, result)
	assert.Equal(t, ports.OutcomeFailed, result.Outcome)
}

func TestExecutionService_Execute_FatalReleaseFaultLeavesExecuted(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}
	vault := executionVault(vaultID)
	proposal := pendingProposal(vaultID)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(vault, nil)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(proposal, nil)
	d.custody.EXPECT().Balance(ctx, vaultID).Return(int64(1000), nil)
	d.proposalRepo.EXPECT().SetExecuted(ctx, tx, vaultID, int64(0), true).Return(nil)
	d.custody.EXPECT().Release(ctx, vaultID, "dest-1", int64(400), nil).Return(false, errors.New("custody backend down"))
	// No reset, no settle, no event: executed=true stays committed.

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	assert.Nil(t, result)
	require.Error(t, err)
	assertAppError(t, err, "SYS_001")
}

func TestExecutionService_Execute_NotOwner(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(executionVault(vaultID), nil)

	result, err := d.svc.Execute(ctx, vaultID, "mallory", 0)
	assert.Nil(t, result)
	assertAppError(t, err, "OWN_001")
}

func TestExecutionService_Execute_UnknownProposal(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(executionVault(vaultID), nil)

	// NextProposalID is 1, so id 1 was never assigned.
	result, err := d.svc.Execute(ctx, vaultID, "alice", 1)
	assert.Nil(t, result)
	assertAppError(t, err, "PROP_002")
}

func TestExecutionService_Execute_AlreadyExecuted(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}
	proposal := pendingProposal(vaultID)
	proposal.Executed = true

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(executionVault(vaultID), nil)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(proposal, nil)

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	assert.Nil(t, result)
	assertAppError(t, err, "PROP_003")
}

func TestExecutionService_Execute_CallerHasNotApproved(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(executionVault(vaultID), nil)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(pendingProposal(vaultID), nil)

	// carol is an owner but never approved proposal 0.
	result, err := d.svc.Execute(ctx, vaultID, "carol", 0)
	assert.Nil(t, result)
	assertAppError(t, err, "PROP_005")
}

func TestExecutionService_Execute_InsufficientApprovals(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}
	proposal := pendingProposal(vaultID)
	proposal.Approvals = []domain.Owner{"alice"}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(executionVault(vaultID), nil)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(proposal, nil)

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	assert.Nil(t, result)
	assertAppError(t, err, "EXEC_001")
}

// Quorum is judged against the threshold in force now, not at submit time.
func TestExecutionService_Execute_RaisedThresholdBlocksOldQuorum(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}
	vault := executionVault(vaultID)
	vault.Threshold = 3

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(vault, nil)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(pendingProposal(vaultID), nil)

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	assert.Nil(t, result)
	assertAppError(t, err, "EXEC_001")
}

// Approvals from since-removed owners still count toward quorum.
func TestExecutionService_Execute_RemovedApproverStillCounts(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}
	vault := executionVault(vaultID)
	vault.Owners = []domain.Owner{"alice", "carol"} // bob removed after approving

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(vault, nil).Times(2)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(pendingProposal(vaultID), nil)
	d.custody.EXPECT().Balance(ctx, vaultID).Return(int64(1000), nil)
	d.proposalRepo.EXPECT().SetExecuted(ctx, tx, vaultID, int64(0), true).Return(nil)
	d.custody.EXPECT().Release(ctx, vaultID, "dest-1", int64(400), nil).Return(true, nil)
	d.vaultRepo.EXPECT().UpdateAccounting(ctx, tx, vaultID, int64(600), int64(0)).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, ports.OutcomeExecuted, result.Outcome)
}

func TestExecutionService_Execute_InsufficientFunds(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(executionVault(vaultID), nil)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(pendingProposal(vaultID), nil)
	// Actual custody balance is what counts, not the tracked ledger.
	d.custody.EXPECT().Balance(ctx, vaultID).Return(int64(399), nil)

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	assert.Nil(t, result)
	assertAppError(t, err, "EXEC_002")
}

// A release larger than the tracked balance floors the ledger at zero
// instead of going negative.
func TestExecutionService_Execute_SettleFloorsTrackedBalance(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}
	vault := executionVault(vaultID)
	vault.TrackedBalance = 100 // custody holds more through forced deposits

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(vault, nil).Times(2)
	d.proposalRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID, int64(0)).Return(pendingProposal(vaultID), nil)
	d.custody.EXPECT().Balance(ctx, vaultID).Return(int64(1000), nil)
	d.proposalRepo.EXPECT().SetExecuted(ctx, tx, vaultID, int64(0), true).Return(nil)
	d.custody.EXPECT().Release(ctx, vaultID, "dest-1", int64(400), nil).Return(true, nil)
	d.vaultRepo.EXPECT().UpdateAccounting(ctx, tx, vaultID, int64(0), int64(0)).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, ports.OutcomeExecuted, result.Outcome)
}

func TestExecutionService_Execute_VaultNotFound(t *testing.T) {
	d := setupExecutionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	vaultID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.vaultRepo.EXPECT().GetByIDForUpdate(ctx, tx, vaultID).Return(nil, nil)

	result, err := d.svc.Execute(ctx, vaultID, "alice", 0)
	assert.Nil(t, result)
	assertAppError(t, err, "VLT_001")
}
