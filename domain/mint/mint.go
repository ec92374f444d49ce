package mint

import (
	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/token"
	"github.com/x-xyz/goclient/domain/tx"
)

// Request describes one mint: the raw image blob plus the metadata fields
// that end up in the pinned ERC-721 document.
type Request struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Image       []byte            `json:"image" validate:"required"`
	Attributes  []token.Attribute `json:"attributes"`
}

// Result reports one confirmed mint.
type Result struct {
	TokenId     domain.TokenId         `json:"tokenId"`
	MetadataUri string                 `json:"metadataUri"`
	ImageUri    string                 `json:"imageUri"`
	Tx          *tx.PendingTransaction `json:"tx"`
}

type Usecase interface {
	// Mint uploads the image and metadata to the storage collaborator, then
	// submits mint(to, tokenURI) payable with the contract's current
	// mintPrice. Storage failures are not retried.
	Mint(c bCtx.Ctx, req *Request) (*Result, error)
}
