package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
)

// RawListing is the tuple getListing returns, before unit conversion.
type RawListing struct {
	Seller common.Address
	Price  *big.Int
	Active bool
}

// Marketplace is a typed view over a marketplace-contract handle.
type Marketplace struct {
	h binding.Handle
}

func NewMarketplace(h binding.Handle) *Marketplace {
	return &Marketplace{h: h}
}

func (m *Marketplace) GetListing(c bCtx.Ctx, tokenId domain.TokenId) (*RawListing, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return nil, err
	}
	unpacked, err := m.h.Call(c, "getListing", id)
	if err != nil {
		return nil, err
	}
	return &RawListing{
		Seller: unpacked[0].(common.Address),
		Price:  unpacked[1].(*big.Int),
		Active: unpacked[2].(bool),
	}, nil
}

func (m *Marketplace) GetActiveListings(c bCtx.Ctx, offset, limit int64) ([]domain.TokenId, error) {
	unpacked, err := m.h.Call(c, "getActiveListings", big.NewInt(offset), big.NewInt(limit))
	if err != nil {
		return nil, err
	}
	return toTokenIds(unpacked[0]), nil
}

func (m *Marketplace) GetSellerListings(c bCtx.Ctx, seller domain.Address) ([]domain.TokenId, error) {
	unpacked, err := m.h.Call(c, "getSellerListings", common.HexToAddress(seller.String()))
	if err != nil {
		return nil, err
	}
	return toTokenIds(unpacked[0]), nil
}

func (m *Marketplace) MarketplaceFee(c bCtx.Ctx) (int64, error) {
	unpacked, err := m.h.Call(c, "marketplaceFee")
	if err != nil {
		return 0, err
	}
	return unpacked[0].(*big.Int).Int64(), nil
}

func (m *Marketplace) ListNFT(c bCtx.Ctx, tokenId domain.TokenId, priceWei *big.Int) (domain.TxHash, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return "", err
	}
	return m.h.Transact(c, binding.TransactOpts{}, "listNFT", id, priceWei)
}

func (m *Marketplace) BuyNFT(c bCtx.Ctx, tokenId domain.TokenId, priceWei *big.Int) (domain.TxHash, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return "", err
	}
	return m.h.Transact(c, binding.TransactOpts{Value: priceWei}, "buyNFT", id)
}

func (m *Marketplace) CancelListing(c bCtx.Ctx, tokenId domain.TokenId) (domain.TxHash, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return "", err
	}
	return m.h.Transact(c, binding.TransactOpts{}, "cancelListing", id)
}

func (m *Marketplace) UpdateListingPrice(c bCtx.Ctx, tokenId domain.TokenId, newPriceWei *big.Int) (domain.TxHash, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return "", err
	}
	return m.h.Transact(c, binding.TransactOpts{}, "updateListingPrice", id, newPriceWei)
}

func toTokenIds(unpacked interface{}) []domain.TokenId {
	raw := unpacked.([]*big.Int)
	ids := make([]domain.TokenId, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, domain.TokenIdFromBig(id))
	}
	return ids
}
