package binding

import (
	"math/big"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
)

// TransactOpts carries per-submission options for mutating calls.
type TransactOpts struct {
	// Value is the payable amount in wei. Nil for non-payable calls.
	Value *big.Int
}

// Handle is a client-side handle bound to one contract address. Read
// handles resolve Call only; write handles additionally submit through the
// wallet's signing RPC.
type Handle interface {
	ContractAddress() domain.Address
	Call(c bCtx.Ctx, method string, params ...interface{}) ([]interface{}, error)
	Transact(c bCtx.Ctx, opts TransactOpts, method string, params ...interface{}) (domain.TxHash, error)
}

// Provider derives contract handles from the current session. Handles are
// memoized per (contract, mode, signer) and the write side is invalidated
// whenever the session address changes or clears.
type Provider interface {
	// ReadBinding returns false when no chain client is reachable; callers
	// treat that as "chain currently unreachable", not an error.
	ReadBinding(c bCtx.Ctx, contract domain.Address) (Handle, bool)
	// WriteBinding returns false unless the session holds an address with a
	// signing capability. Mutating operations must check this and fail with
	// domain.ErrSignerUnavailable instead of attempting the call.
	WriteBinding(c bCtx.Ctx, contract domain.Address) (Handle, bool)
	// Close releases the session observer.
	Close()
}
