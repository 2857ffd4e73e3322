package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"multisig-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Vault Repo ---

type inMemoryVaultRepo struct {
	mu     sync.RWMutex
	vaults map[uuid.UUID]*domain.Vault
}

func newInMemoryVaultRepo() *inMemoryVaultRepo {
	return &inMemoryVaultRepo{vaults: make(map[uuid.UUID]*domain.Vault)}
}

func cloneVault(v *domain.Vault) *domain.Vault {
	c := *v
	c.Owners = append([]domain.Owner(nil), v.Owners...)
	return &c
}

func (r *inMemoryVaultRepo) Create(ctx context.Context, vault *domain.Vault) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vaults[vault.ID] = cloneVault(vault)
	return nil
}

func (r *inMemoryVaultRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vault, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vaults[id]
	if !ok {
		return nil, nil
	}
	return cloneVault(v), nil
}

func (r *inMemoryVaultRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Vault, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryVaultRepo) UpdateMembership(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, owners []domain.Owner, threshold int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vaults[vaultID]
	if !ok {
		return fmt.Errorf("vault not found")
	}
	v.Owners = append([]domain.Owner(nil), owners...)
	v.Threshold = threshold
	return nil
}

func (r *inMemoryVaultRepo) UpdateAccounting(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, trackedBalance, forcedDepositCount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vaults[vaultID]
	if !ok {
		return fmt.Errorf("vault not found")
	}
	v.TrackedBalance = trackedBalance
	v.ForcedDepositCount = forcedDepositCount
	return nil
}

func (r *inMemoryVaultRepo) BumpProposalSeq(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, next int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vaults[vaultID]
	if !ok {
		return fmt.Errorf("vault not found")
	}
	v.NextProposalID = next
	return nil
}

// --- In-Memory Proposal Repo ---

type proposalKey struct {
	vaultID uuid.UUID
	id      int64
}

type inMemoryProposalRepo struct {
	mu        sync.RWMutex
	proposals map[proposalKey]*domain.Proposal
}

func newInMemoryProposalRepo() *inMemoryProposalRepo {
	return &inMemoryProposalRepo{proposals: make(map[proposalKey]*domain.Proposal)}
}

func cloneProposal(p *domain.Proposal) *domain.Proposal {
	c := *p
	c.Payload = append([]byte(nil), p.Payload...)
	c.Approvals = append([]domain.Owner(nil), p.Approvals...)
	return &c
}

func (r *inMemoryProposalRepo) Create(ctx context.Context, tx pgx.Tx, proposal *domain.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.proposals[proposalKey{proposal.VaultID, proposal.ID}] = cloneProposal(proposal)
	return nil
}

func (r *inMemoryProposalRepo) GetByID(ctx context.Context, vaultID uuid.UUID, id int64) (*domain.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.proposals[proposalKey{vaultID, id}]
	if !ok {
		return nil, nil
	}
	return cloneProposal(p), nil
}

func (r *inMemoryProposalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64) (*domain.Proposal, error) {
	return r.GetByID(ctx, vaultID, id)
}

func (r *inMemoryProposalRepo) AddApproval(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64, approver domain.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.proposals[proposalKey{vaultID, id}]
	if !ok {
		return fmt.Errorf("proposal not found")
	}
	p.Approvals = append(p.Approvals, approver)
	return nil
}

func (r *inMemoryProposalRepo) RemoveApproval(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64, approver domain.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.proposals[proposalKey{vaultID, id}]
	if !ok {
		return fmt.Errorf("proposal not found")
	}
	kept := p.Approvals[:0]
	for _, o := range p.Approvals {
		if o != approver {
			kept = append(kept, o)
		}
	}
	p.Approvals = kept
	return nil
}

func (r *inMemoryProposalRepo) SetExecuted(ctx context.Context, tx pgx.Tx, vaultID uuid.UUID, id int64, executed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.proposals[proposalKey{vaultID, id}]
	if !ok {
		return fmt.Errorf("proposal not found")
	}
	p.Executed = executed
	return nil
}

func (r *inMemoryProposalRepo) ListByVault(ctx context.Context, vaultID uuid.UUID) ([]domain.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Proposal
	for key, p := range r.proposals {
		if key.vaultID == vaultID {
			result = append(result, *cloneProposal(p))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// --- Serializing Transactor ---

// serialTransactor hands out transactions that hold one global lock from
// Begin to Commit/Rollback. That coarsely stands in for the row locks the
// postgres repos take with SELECT FOR UPDATE, so read-modify-write cycles
// inside a transaction stay atomic under concurrent requests.
type serialTransactor struct {
	mu sync.Mutex
}

func newSerialTransactor() *serialTransactor {
	return &serialTransactor{}
}

func (t *serialTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &serialTx{mu: &t.mu}, nil
}

// serialTx is a no-op pgx.Tx that releases the transactor lock exactly once,
// on whichever of Commit/Rollback comes first.
type serialTx struct {
	mu   *sync.Mutex
	once sync.Once
}

func (t *serialTx) release() {
	t.once.Do(t.mu.Unlock)
}

func (t *serialTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *serialTx) Commit(ctx context.Context) error          { t.release(); return nil }
func (t *serialTx) Rollback(ctx context.Context) error        { t.release(); return nil }
func (t *serialTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *serialTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *serialTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *serialTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *serialTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *serialTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *serialTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *serialTx) Conn() *pgx.Conn { return nil }

// --- Fake Custody Gateway ---

type releaseCall struct {
	vaultID     uuid.UUID
	destination string
	amount      int64
}

// fakeCustody is a scriptable stand-in for the custody provider. Balances
// are credited directly by tests (modelling funds arriving at the provider,
// announced or not). Releases can be declined, faulted, or hooked to
// re-enter the API mid-release.
type fakeCustody struct {
	mu          sync.Mutex
	balances    map[uuid.UUID]int64
	declines    int
	releaseErr  error
	releaseHook func(call releaseCall)
	released    []releaseCall
}

func newFakeCustody() *fakeCustody {
	return &fakeCustody{balances: make(map[uuid.UUID]int64)}
}

func (f *fakeCustody) credit(vaultID uuid.UUID, amount int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[vaultID] += amount
}

func (f *fakeCustody) declineNext(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.declines = n
}

func (f *fakeCustody) releaseCalls() []releaseCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]releaseCall(nil), f.released...)
}

func (f *fakeCustody) Balance(ctx context.Context, vaultID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[vaultID], nil
}

func (f *fakeCustody) Release(ctx context.Context, vaultID uuid.UUID, destination string, amount int64, payload []byte) (bool, error) {
	call := releaseCall{vaultID: vaultID, destination: destination, amount: amount}

	f.mu.Lock()
	if f.releaseErr != nil {
		err := f.releaseErr
		f.mu.Unlock()
		return false, err
	}
	if f.declines > 0 {
		f.declines--
		f.mu.Unlock()
		return false, nil
	}
	hook := f.releaseHook
	f.mu.Unlock()

	// Run the hook without holding the lock: it may re-enter the API, which
	// in turn reads balances through this gateway.
	if hook != nil {
		hook(call)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[vaultID] -= amount
	f.released = append(f.released, call)
	return true, nil
}
