package ens

import (
	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
)

type ENS interface {
	// ReverseResolve returns the primary name for an address, or "" when
	// none is registered. A display-only concern: failures log and read as
	// unnamed rather than propagating.
	ReverseResolve(ctx bCtx.Ctx, address domain.Address) (string, error)
}
