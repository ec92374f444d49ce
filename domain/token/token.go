package token

import (
	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/marketplace"
)

// NFTRecord is one owned token, derived by balance enumeration. Not
// independently persisted.
type NFTRecord struct {
	TokenId  domain.TokenId `json:"tokenId"`
	Owner    domain.Address `json:"owner"`
	TokenURI string         `json:"tokenUri"`
}

// Metadata is the ERC-721 metadata document a token URI points at.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	ExternalUrl string      `json:"external_url,omitempty"`
}

type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// Inventory is the result of one enumeration pass. Records are ordered by
// enumeration index; Skipped counts tokens omitted because their URI fetch
// failed, so consumers can tell a clean load from a partial one.
type Inventory struct {
	Records []*NFTRecord `json:"records"`
	Skipped int          `json:"skipped"`
}

// OwnedToken cross-references an owned token with its live listing. A nil
// or inactive listing means owned-but-not-listed, never an error state.
type OwnedToken struct {
	NFTRecord
	Listing *marketplace.Listing `json:"listing,omitempty"`
}

// Portfolio is an inventory joined with listings.
type Portfolio struct {
	Tokens  []*OwnedToken `json:"tokens"`
	Skipped int           `json:"skipped"`
}

type Usecase interface {
	// LoadOwnedTokens enumerates balance then indexes 0..balance-1; URI
	// fetches run concurrently and tokens whose fetch fails are omitted
	// and logged. Fails with domain.ErrContractUnavailable when no read
	// binding exists.
	LoadOwnedTokens(c bCtx.Ctx, owner domain.Address) (*Inventory, error)
	// LoadPortfolio is LoadOwnedTokens joined with listing hydration.
	LoadPortfolio(c bCtx.Ctx, owner domain.Address) (*Portfolio, error)
	// TokenMetadata resolves and decodes the metadata document behind a
	// token URI, through the gateway, cached briefly.
	TokenMetadata(c bCtx.Ctx, tokenUri string) (*Metadata, error)
	// Watch emits a reloaded portfolio on every refresh-signal tick and
	// session change until c is done. The returned func stops the watch.
	Watch(c bCtx.Ctx, owner domain.Address) (<-chan *Portfolio, func())
}
