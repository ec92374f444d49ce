package tx

import (
	"time"

	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
)

type Kind string

const (
	KindMint        Kind = "mint"
	KindList        Kind = "list"
	KindBuy         Kind = "buy"
	KindCancel      Kind = "cancel"
	KindUpdatePrice Kind = "updatePrice"
	KindApprove     Kind = "approve"
)

type Status string

const (
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
	StatusConfirmed  Status = "confirmed"
	StatusFailed     Status = "failed"
)

// PendingTransaction is the descriptor of one lifecycle invocation. It is
// ephemeral: a fresh invocation always starts a new instance, never reuses
// or queues an old one.
type PendingTransaction struct {
	Id          string        `json:"id"`
	Kind        Kind          `json:"kind"`
	Hash        domain.TxHash `json:"hash,omitempty"`
	Status      Status        `json:"status"`
	SubmittedAt time.Time     `json:"submittedAt"`
	// BlockNumber is the block the transaction mined in, zero until then.
	BlockNumber domain.BlockNumber `json:"blockNumber,omitempty"`

	// Receipt is populated once mined so callers can decode emitted events.
	Receipt *types.Receipt `json:"-"`
}

// SubmitFunc invokes the write binding's method and returns the submitted
// transaction hash.
type SubmitFunc func(c bCtx.Ctx, h binding.Handle) (domain.TxHash, error)

// OnConfirmedFunc is the caller's success continuation, run after the
// transaction confirms and the refresh signal bumps.
type OnConfirmedFunc func(c bCtx.Ctx)

// ObserverFunc receives a descriptor snapshot at every status transition.
type ObserverFunc func(PendingTransaction)

// Coordinator drives the submit → submitted → confirmed/failed protocol
// shared by every mutating operation.
type Coordinator interface {
	// Execute runs one lifecycle. A nil handle fails immediately with
	// domain.ErrSignerUnavailable, and a missing chain client with
	// domain.ErrContractUnavailable, both before any network call. Submission
	// failures surface as *domain.SubmissionError, post-submission failures
	// as *domain.ConfirmationError; both are terminal, never retried. The
	// confirmation wait has no client-enforced timeout.
	Execute(c bCtx.Ctx, kind Kind, h binding.Handle, submit SubmitFunc, onConfirmed OnConfirmedFunc) (*PendingTransaction, error)
	// OnStatus registers a lifecycle observer. The returned func releases it.
	OnStatus(fn ObserverFunc) func()
}
