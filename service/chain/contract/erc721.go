package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
)

// Erc721 is a typed view over a collection-contract handle. Construction is
// cheap; stores build one per resolved binding.
type Erc721 struct {
	h binding.Handle
}

func NewErc721(h binding.Handle) *Erc721 {
	return &Erc721{h: h}
}

func (e *Erc721) BalanceOf(c bCtx.Ctx, owner domain.Address) (*big.Int, error) {
	unpacked, err := e.h.Call(c, "balanceOf", common.HexToAddress(owner.String()))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc721) TokenOfOwnerByIndex(c bCtx.Ctx, owner domain.Address, index int64) (domain.TokenId, error) {
	unpacked, err := e.h.Call(c, "tokenOfOwnerByIndex", common.HexToAddress(owner.String()), big.NewInt(index))
	if err != nil {
		return "", err
	}
	return domain.TokenIdFromBig(unpacked[0].(*big.Int)), nil
}

func (e *Erc721) TokenURI(c bCtx.Ctx, tokenId domain.TokenId) (string, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return "", err
	}
	unpacked, err := e.h.Call(c, "tokenURI", id)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Erc721) OwnerOf(c bCtx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return "", err
	}
	unpacked, err := e.h.Call(c, "ownerOf", id)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).String()), nil
}

func (e *Erc721) MintPrice(c bCtx.Ctx) (*big.Int, error) {
	unpacked, err := e.h.Call(c, "mintPrice")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc721) GetApproved(c bCtx.Ctx, tokenId domain.TokenId) (domain.Address, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return "", err
	}
	unpacked, err := e.h.Call(c, "getApproved", id)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).String()), nil
}

func (e *Erc721) IsApprovedForAll(c bCtx.Ctx, owner, operator domain.Address) (bool, error) {
	unpacked, err := e.h.Call(c, "isApprovedForAll", common.HexToAddress(owner.String()), common.HexToAddress(operator.String()))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) Mint(c bCtx.Ctx, value *big.Int, to domain.Address, tokenUri string) (domain.TxHash, error) {
	return e.h.Transact(c, binding.TransactOpts{Value: value}, "mint", common.HexToAddress(to.String()), tokenUri)
}

func (e *Erc721) SetApprovalForAll(c bCtx.Ctx, operator domain.Address, approved bool) (domain.TxHash, error) {
	return e.h.Transact(c, binding.TransactOpts{}, "setApprovalForAll", common.HexToAddress(operator.String()), approved)
}
