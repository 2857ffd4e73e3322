package domain

import (
	"time"

	"github.com/google/uuid"
)

// Owner is an opaque caller identity, authenticated by the environment
// before it ever reaches this service. Owners form a set: no duplicates,
// never empty.
type Owner string

// Valid reports whether the identity is usable as an owner.
func (o Owner) Valid() bool {
	return o != ""
}

// Vault is the aggregate root: a pool of custodied funds co-owned by a set
// of owners, released only by quorum-approved proposals.
//
// Owners is an unordered set exposed as a slice for enumeration; removal may
// reorder the remaining elements. TrackedBalance is the internal ledger of
// known inflows minus successful releases and never goes negative.
type Vault struct {
	ID                 uuid.UUID `json:"id"`
	Owners             []Owner   `json:"owners"`
	Threshold          int       `json:"threshold"`
	TrackedBalance     int64     `json:"tracked_balance"`
	ForcedDepositCount int64     `json:"forced_deposit_count"`
	NextProposalID     int64     `json:"next_proposal_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// HasOwner reports whether identity is currently a member of the owner set.
func (v *Vault) HasOwner(identity Owner) bool {
	for _, o := range v.Owners {
		if o == identity {
			return true
		}
	}
	return false
}

// ValidThreshold reports whether n is an acceptable threshold for the
// current owner set: 1 <= n <= |owners|.
func (v *Vault) ValidThreshold(n int) bool {
	return n >= 1 && n <= len(v.Owners)
}

// CanRemoveOwner reports whether removing one owner keeps the invariants
// intact: at least one owner remains and the set stays at or above the
// threshold.
func (v *Vault) CanRemoveOwner() bool {
	remaining := len(v.Owners) - 1
	return remaining >= 1 && remaining >= v.Threshold
}

// KnowsProposal reports whether id was ever assigned. Proposals are never
// deleted, so any id strictly below the counter exists.
func (v *Vault) KnowsProposal(id int64) bool {
	return id >= 0 && id < v.NextProposalID
}
