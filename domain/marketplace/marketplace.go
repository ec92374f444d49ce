package marketplace

import (
	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/tx"
)

// Listing mirrors the marketplace contract's record for one token. The
// contract is the source of truth; the client never persists a listing
// beyond the current view.
type Listing struct {
	Seller  domain.Address  `json:"seller"`
	TokenId domain.TokenId  `json:"tokenId"`
	Price   decimal.Decimal `json:"price"`
	Active  bool            `json:"active"`
}

// Actionable reports whether the listing can be bought or cancelled. An
// inactive listing is never actionable even if present in a stale view.
func (l *Listing) Actionable() bool {
	return l != nil && l.Active
}

// ListingView enriches a listing with display-only derivations: the fee
// breakdown and the seller's reverse-resolved name when one exists.
type ListingView struct {
	Listing
	SellerName     string          `json:"sellerName,omitempty"`
	Fee            decimal.Decimal `json:"fee"`
	SellerReceives decimal.Decimal `json:"sellerReceives"`
}

// ApprovalState is the two-phase listing precondition exposed at this API
// boundary rather than left to presentation-layer sequencing.
type ApprovalState string

const (
	Unapproved ApprovalState = "unapproved"
	Approved   ApprovalState = "approved"
)

type Usecase interface {
	// GetListing returns nil (not an error) when the lookup fails: a
	// missing listing and an RPC glitch both read as "no usable listing".
	// Fails with domain.ErrContractUnavailable when no read binding exists.
	GetListing(c bCtx.Ctx, tokenId domain.TokenId) (*Listing, error)
	// GetListingView is GetListing plus fee breakdown and seller name.
	GetListingView(c bCtx.Ctx, tokenId domain.TokenId) (*ListingView, error)
	// GetActiveListings pages the contract's active-listings index. An
	// empty result means no more listings in range; a call failure returns
	// a non-nil error.
	GetActiveListings(c bCtx.Ctx, offset, limit int64) ([]domain.TokenId, error)
	// GetSellerListings is unordered relative to listing creation time.
	GetSellerListings(c bCtx.Ctx, seller domain.Address) ([]domain.TokenId, error)
	// HydrateListings fetches each token's listing independently and
	// concurrently. Tokens whose lookup fails are omitted.
	HydrateListings(c bCtx.Ctx, tokenIds []domain.TokenId) (map[domain.TokenId]*Listing, error)

	// ApprovalStatus checks isApprovedForAll first, then the per-token
	// getApproved fallback.
	ApprovalStatus(c bCtx.Ctx, owner domain.Address, tokenId domain.TokenId) (ApprovalState, error)
	// Approve submits setApprovalForAll for the marketplace.
	Approve(c bCtx.Ctx) (*tx.PendingTransaction, error)

	// ListNFT requires a strictly positive price and an Approved state;
	// an unapproved token is rejected locally with
	// domain.ErrApprovalRequired before any chain submission.
	ListNFT(c bCtx.Ctx, tokenId domain.TokenId, price decimal.Decimal) (*tx.PendingTransaction, error)
	// BuyNFT sends exactly the caller's last-known price. A stale price
	// reverts contract-side and surfaces as *domain.SubmissionError.
	BuyNFT(c bCtx.Ctx, tokenId domain.TokenId, price decimal.Decimal) (*tx.PendingTransaction, error)
	CancelListing(c bCtx.Ctx, tokenId domain.TokenId) (*tx.PendingTransaction, error)
	UpdateListingPrice(c bCtx.Ctx, tokenId domain.TokenId, newPrice decimal.Decimal) (*tx.PendingTransaction, error)

	// MarketplaceFee returns the contract's basis-points fee, fetched once
	// per binding epoch. The contract, not this value, is authoritative for
	// the amount actually withheld.
	MarketplaceFee(c bCtx.Ctx) (int64, error)
	// FeeBreakdown computes the informational fee amount and seller
	// proceeds for a price at the given basis-points fee.
	FeeBreakdown(price decimal.Decimal, feeBps int64) (fee, sellerReceives decimal.Decimal)
}
