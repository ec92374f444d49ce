package usecase

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"

	xabi "github.com/x-xyz/goclient/base/abi"
	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
	"github.com/x-xyz/goclient/domain/marketplace"
	"github.com/x-xyz/goclient/domain/tx"
	"github.com/x-xyz/goclient/domain/wallet"
	"github.com/x-xyz/goclient/service/chain/contract"
	"github.com/x-xyz/goclient/service/ens"
)

const hydrateConcurrency = 10

type MarketplaceUseCaseCfg struct {
	Binding         binding.Provider
	Wallet          wallet.Usecase
	Tx              tx.Coordinator
	Ens             ens.ENS
	MarketplaceAddr domain.Address
	CollectionAddr  domain.Address
}

type impl struct {
	binding         binding.Provider
	wallet          wallet.Usecase
	tx              tx.Coordinator
	ens             ens.ENS
	marketplaceAddr domain.Address
	collectionAddr  domain.Address

	// fee is fetched once and reused; the contract stays authoritative for
	// the amount actually withheld at sale time.
	feeMu     sync.Mutex
	feeBps    int64
	feeLoaded bool
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.Usecase {
	return &impl{
		binding:         cfg.Binding,
		wallet:          cfg.Wallet,
		tx:              cfg.Tx,
		ens:             cfg.Ens,
		marketplaceAddr: cfg.MarketplaceAddr,
		collectionAddr:  cfg.CollectionAddr,
	}
}

func (im *impl) reader(c bCtx.Ctx) (*contract.Marketplace, error) {
	h, ok := im.binding.ReadBinding(c, im.marketplaceAddr)
	if !ok {
		return nil, domain.ErrContractUnavailable
	}
	return contract.NewMarketplace(h), nil
}

func (im *impl) collectionReader(c bCtx.Ctx) (*contract.Erc721, error) {
	h, ok := im.binding.ReadBinding(c, im.collectionAddr)
	if !ok {
		return nil, domain.ErrContractUnavailable
	}
	return contract.NewErc721(h), nil
}

func (im *impl) GetListing(c bCtx.Ctx, tokenId domain.TokenId) (*marketplace.Listing, error) {
	m, err := im.reader(c)
	if err != nil {
		return nil, err
	}
	raw, err := m.GetListing(c, tokenId)
	if err != nil {
		// a failed lookup reads the same as no listing
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Warn("getListing failed")
		return nil, nil
	}
	return &marketplace.Listing{
		Seller:  domain.Address(raw.Seller.Hex()).ToLower(),
		TokenId: tokenId,
		Price:   domain.FromWei(raw.Price),
		Active:  raw.Active,
	}, nil
}

func (im *impl) GetListingView(c bCtx.Ctx, tokenId domain.TokenId) (*marketplace.ListingView, error) {
	listing, err := im.GetListing(c, tokenId)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, nil
	}

	view := &marketplace.ListingView{Listing: *listing}
	feeBps, err := im.MarketplaceFee(c)
	if err != nil {
		c.WithField("err", err).Warn("marketplaceFee unavailable, breakdown omitted")
		feeBps = 0
	}
	view.Fee, view.SellerReceives = im.FeeBreakdown(listing.Price, feeBps)

	if im.ens != nil {
		name, err := im.ens.ReverseResolve(c, listing.Seller)
		if err != nil {
			c.WithFields(log.Fields{
				"seller": listing.Seller,
				"err":    err,
			}).Warn("ens.ReverseResolve failed")
		} else {
			view.SellerName = name
		}
	}
	return view, nil
}

func (im *impl) GetActiveListings(c bCtx.Ctx, offset, limit int64) ([]domain.TokenId, error) {
	m, err := im.reader(c)
	if err != nil {
		return []domain.TokenId{}, err
	}
	ids, err := m.GetActiveListings(c, offset, limit)
	if err != nil {
		c.WithField("err", err).Error("getActiveListings failed")
		return []domain.TokenId{}, err
	}
	return ids, nil
}

func (im *impl) GetSellerListings(c bCtx.Ctx, seller domain.Address) ([]domain.TokenId, error) {
	m, err := im.reader(c)
	if err != nil {
		return []domain.TokenId{}, err
	}
	ids, err := m.GetSellerListings(c, seller)
	if err != nil {
		c.WithFields(log.Fields{
			"seller": seller,
			"err":    err,
		}).Error("getSellerListings failed")
		return []domain.TokenId{}, err
	}
	return ids, nil
}

func (im *impl) HydrateListings(c bCtx.Ctx, tokenIds []domain.TokenId) (map[domain.TokenId]*marketplace.Listing, error) {
	if _, err := im.reader(c); err != nil {
		return nil, err
	}

	type entry struct {
		id      domain.TokenId
		listing *marketplace.Listing
	}

	b := goroutines.NewBatch(hydrateConcurrency, goroutines.WithBatchSize(len(tokenIds)))
	defer b.Close()
	for i := 0; i < len(tokenIds); i++ {
		id := tokenIds[i]
		b.Queue(func() (interface{}, error) {
			listing, err := im.GetListing(c, id)
			if err != nil {
				return nil, err
			}
			return &entry{id: id, listing: listing}, nil
		})
	}
	b.QueueComplete()

	listings := make(map[domain.TokenId]*marketplace.Listing, len(tokenIds))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Warn("hydrate listing failed")
			continue
		}
		e := ret.Value().(*entry)
		if e.listing == nil {
			continue
		}
		listings[e.id] = e.listing
	}
	return listings, nil
}

func (im *impl) ApprovalStatus(c bCtx.Ctx, owner domain.Address, tokenId domain.TokenId) (marketplace.ApprovalState, error) {
	col, err := im.collectionReader(c)
	if err != nil {
		return marketplace.Unapproved, err
	}

	approvedForAll, err := col.IsApprovedForAll(c, owner, im.marketplaceAddr)
	if err != nil {
		c.WithField("err", err).Error("isApprovedForAll failed")
		return marketplace.Unapproved, err
	}
	if approvedForAll {
		return marketplace.Approved, nil
	}

	approved, err := col.GetApproved(c, tokenId)
	if err != nil {
		c.WithField("err", err).Error("getApproved failed")
		return marketplace.Unapproved, err
	}
	if approved.Equals(im.marketplaceAddr) {
		return marketplace.Approved, nil
	}
	return marketplace.Unapproved, nil
}

func (im *impl) Approve(c bCtx.Ctx) (*tx.PendingTransaction, error) {
	h, _ := im.binding.WriteBinding(c, im.collectionAddr)
	return im.tx.Execute(c, tx.KindApprove, h, func(c bCtx.Ctx, h binding.Handle) (domain.TxHash, error) {
		return contract.NewErc721(h).SetApprovalForAll(c, im.marketplaceAddr, true)
	}, nil)
}

func (im *impl) ListNFT(c bCtx.Ctx, tokenId domain.TokenId, price decimal.Decimal) (*tx.PendingTransaction, error) {
	if price.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	session := im.wallet.Session()
	if !session.Connected() {
		return nil, domain.ErrSignerUnavailable
	}

	state, err := im.ApprovalStatus(c, *session.Address, tokenId)
	if err != nil {
		return nil, err
	}
	if state != marketplace.Approved {
		// rejected locally, nothing reaches the chain
		return nil, domain.ErrApprovalRequired
	}

	h, _ := im.binding.WriteBinding(c, im.marketplaceAddr)
	priceWei := domain.ToWei(price)
	pt, err := im.tx.Execute(c, tx.KindList, h, func(c bCtx.Ctx, h binding.Handle) (domain.TxHash, error) {
		return contract.NewMarketplace(h).ListNFT(c, tokenId, priceWei)
	}, nil)
	if err != nil {
		return pt, err
	}
	if listed := listedEvent(pt); listed != nil {
		c.WithFields(log.Fields{
			"seller":  listed.Seller.Hex(),
			"tokenId": listed.TokenId.String(),
			"price":   domain.FromWei(listed.Price).String(),
		}).Info("listing recorded")
	}
	return pt, nil
}

// BuyNFT sends the caller's last-known price verbatim. If the seller
// repriced in between, the contract reverts and the failure surfaces as a
// submission error; no re-read happens here.
func (im *impl) BuyNFT(c bCtx.Ctx, tokenId domain.TokenId, price decimal.Decimal) (*tx.PendingTransaction, error) {
	if price.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	h, _ := im.binding.WriteBinding(c, im.marketplaceAddr)
	priceWei := domain.ToWei(price)
	pt, err := im.tx.Execute(c, tx.KindBuy, h, func(c bCtx.Ctx, h binding.Handle) (domain.TxHash, error) {
		return contract.NewMarketplace(h).BuyNFT(c, tokenId, priceWei)
	}, nil)
	if err != nil {
		return pt, err
	}
	if sold := soldEvent(pt); sold != nil {
		c.WithFields(log.Fields{
			"seller":  sold.Seller.Hex(),
			"buyer":   sold.Buyer.Hex(),
			"tokenId": sold.TokenId.String(),
			"price":   domain.FromWei(sold.Price).String(),
		}).Info("sale recorded")
	}
	return pt, nil
}

func (im *impl) CancelListing(c bCtx.Ctx, tokenId domain.TokenId) (*tx.PendingTransaction, error) {
	h, _ := im.binding.WriteBinding(c, im.marketplaceAddr)
	return im.tx.Execute(c, tx.KindCancel, h, func(c bCtx.Ctx, h binding.Handle) (domain.TxHash, error) {
		return contract.NewMarketplace(h).CancelListing(c, tokenId)
	}, nil)
}

func (im *impl) UpdateListingPrice(c bCtx.Ctx, tokenId domain.TokenId, newPrice decimal.Decimal) (*tx.PendingTransaction, error) {
	if newPrice.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	h, _ := im.binding.WriteBinding(c, im.marketplaceAddr)
	newPriceWei := domain.ToWei(newPrice)
	return im.tx.Execute(c, tx.KindUpdatePrice, h, func(c bCtx.Ctx, h binding.Handle) (domain.TxHash, error) {
		return contract.NewMarketplace(h).UpdateListingPrice(c, tokenId, newPriceWei)
	}, nil)
}

func (im *impl) MarketplaceFee(c bCtx.Ctx) (int64, error) {
	im.feeMu.Lock()
	defer im.feeMu.Unlock()
	if im.feeLoaded {
		return im.feeBps, nil
	}

	m, err := im.reader(c)
	if err != nil {
		return 0, err
	}
	feeBps, err := m.MarketplaceFee(c)
	if err != nil {
		c.WithField("err", err).Error("marketplaceFee failed")
		return 0, err
	}
	im.feeBps = feeBps
	im.feeLoaded = true
	return feeBps, nil
}

func (im *impl) FeeBreakdown(price decimal.Decimal, feeBps int64) (decimal.Decimal, decimal.Decimal) {
	fee := price.Mul(decimal.New(feeBps, -4))
	return fee, price.Sub(fee)
}

// listedEvent recovers the NFTListed event from a confirmed list receipt.
// Nil when the receipt carries no recognizable event.
func listedEvent(pt *tx.PendingTransaction) *xabi.NFTListedLog {
	if pt == nil || pt.Receipt == nil {
		return nil
	}
	for _, l := range pt.Receipt.Logs {
		if len(l.Topics) != 3 || l.Topics[0] != xabi.NFTListedTopic() {
			continue
		}
		listed, err := xabi.ToNFTListedLog(l)
		if err != nil {
			continue
		}
		return listed
	}
	return nil
}

// soldEvent recovers the NFTSold event from a confirmed buy receipt.
func soldEvent(pt *tx.PendingTransaction) *xabi.NFTSoldLog {
	if pt == nil || pt.Receipt == nil {
		return nil
	}
	for _, l := range pt.Receipt.Logs {
		if len(l.Topics) != 4 || l.Topics[0] != xabi.NFTSoldTopic() {
			continue
		}
		sold, err := xabi.ToNFTSoldLog(l)
		if err != nil {
			continue
		}
		return sold
	}
	return nil
}
