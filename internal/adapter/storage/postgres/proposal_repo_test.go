package postgres

import (
	"context"
	"testing"
	"time"

	"multisig-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProposal(vaultID uuid.UUID) *domain.Proposal {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Proposal{
		ID:          0,
		VaultID:     vaultID,
		Destination: "dest-account-1",
		Amount:      10,
		Payload:     []byte{0xde, 0xad},
		Approvals:   []domain.Owner{},
		Executed:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func proposalColumns() []string {
	return []string{"vault_id", "id", "destination", "amount", "payload", "approvals", "executed", "created_at", "updated_at"}
}

func proposalRow(p *domain.Proposal) *pgxmock.Rows {
	return pgxmock.NewRows(proposalColumns()).AddRow(
		p.VaultID, p.ID, p.Destination, p.Amount, p.Payload,
		ownersToStrings(p.Approvals), p.Executed, p.CreatedAt, p.UpdatedAt,
	)
}

func TestProposalRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProposalRepo(mock)
	p := newTestProposal(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO proposals").
		WithArgs(p.VaultID, p.ID, p.Destination, p.Amount, p.Payload,
			ownersToStrings(p.Approvals), p.Executed, p.CreatedAt, p.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProposalRepo(mock)
	p := newTestProposal(uuid.New())
	p.Approvals = []domain.Owner{"alice", "bob"}

	mock.ExpectQuery("SELECT .+ FROM proposals WHERE vault_id .+ AND id").
		WithArgs(p.VaultID, p.ID).
		WillReturnRows(proposalRow(p))

	result, err := repo.GetByID(context.Background(), p.VaultID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, p.Destination, result.Destination)
	assert.Equal(t, p.Amount, result.Amount)
	assert.Equal(t, []domain.Owner{"alice", "bob"}, result.Approvals)
	assert.False(t, result.Executed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProposalRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM proposals WHERE vault_id .+ AND id").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(proposalColumns()))

	result, err := repo.GetByID(context.Background(), uuid.New(), 42)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepo_AddApproval(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProposalRepo(mock)
	vaultID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE proposals SET approvals = array_append").
		WithArgs("alice", vaultID, int64(0)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.AddApproval(context.Background(), dbTx, vaultID, 0, "alice")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepo_AddApproval_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProposalRepo(mock)
	vaultID := uuid.New()

	// The NOT (.. = ANY(approvals)) guard turns a duplicate into zero rows.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE proposals SET approvals = array_append").
		WithArgs("alice", vaultID, int64(0)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.AddApproval(context.Background(), dbTx, vaultID, 0, "alice")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepo_RemoveApproval(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProposalRepo(mock)
	vaultID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE proposals SET approvals = array_remove").
		WithArgs("alice", vaultID, int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.RemoveApproval(context.Background(), dbTx, vaultID, 3, "alice")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepo_SetExecuted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProposalRepo(mock)
	vaultID := uuid.New()

	for _, executed := range []bool{true, false} {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE proposals SET executed").
			WithArgs(executed, vaultID, int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		dbTx, err := mock.Begin(context.Background())
		require.NoError(t, err)

		err = repo.SetExecuted(context.Background(), dbTx, vaultID, 1, executed)
		assert.NoError(t, err)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepo_ListByVault(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProposalRepo(mock)
	vaultID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	rows := pgxmock.NewRows(proposalColumns()).
		AddRow(vaultID, int64(0), "dest-a", int64(10), []byte(nil), []string{"alice"}, true, now, now).
		AddRow(vaultID, int64(1), "dest-b", int64(20), []byte(nil), []string{}, false, now, now)

	mock.ExpectQuery("SELECT .+ FROM proposals WHERE vault_id .+ ORDER BY id").
		WithArgs(vaultID).
		WillReturnRows(rows)

	result, err := repo.ListByVault(context.Background(), vaultID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(0), result[0].ID)
	assert.True(t, result[0].Executed)
	assert.Equal(t, int64(1), result[1].ID)
	assert.Equal(t, 0, result[1].ApprovalCount())
	assert.NoError(t, mock.ExpectationsWereMet())
}
