package usecase

import (
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	xabi "github.com/x-xyz/goclient/base/abi"
	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/refresh"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
	"github.com/x-xyz/goclient/domain/marketplace"
	"github.com/x-xyz/goclient/domain/tx"
	"github.com/x-xyz/goclient/domain/wallet"
	chainMocks "github.com/x-xyz/goclient/service/chain/mocks"
	ensMocks "github.com/x-xyz/goclient/service/ens/mocks"
	txUsecase "github.com/x-xyz/goclient/stores/tx/usecase"
)

const (
	marketAddr     = domain.Address("0x00000000000000000000000000000000000000aa")
	collectionAddr = domain.Address("0x00000000000000000000000000000000000000bb")
	sellerAddr     = domain.Address("0xabc0000000000000000000000000000000000001")
	buyerAddr      = domain.Address("0xdef0000000000000000000000000000000000002")
)

type fakeListing struct {
	seller domain.Address
	price  *big.Int
	active bool
}

// fakeContracts simulates the marketplace and collection contracts behind
// binding handles, so flows exercise real submit-and-read sequencing.
type fakeContracts struct {
	mu          sync.Mutex
	feeBps      int64
	listings    map[string]*fakeListing
	approvedAll map[domain.Address]bool
	order       []string
	transacts   int
}

func newFakeContracts() *fakeContracts {
	return &fakeContracts{
		feeBps:      250,
		listings:    map[string]*fakeListing{},
		approvedAll: map[domain.Address]bool{},
	}
}

type marketHandle struct {
	contracts *fakeContracts
	from      domain.Address
}

func (h *marketHandle) ContractAddress() domain.Address { return marketAddr }

func (h *marketHandle) Call(c bCtx.Ctx, method string, params ...interface{}) ([]interface{}, error) {
	f := h.contracts
	f.mu.Lock()
	defer f.mu.Unlock()
	switch method {
	case "getListing":
		id := params[0].(*big.Int).String()
		l, ok := f.listings[id]
		if !ok {
			return []interface{}{common.Address{}, big.NewInt(0), false}, nil
		}
		return []interface{}{common.HexToAddress(l.seller.String()), new(big.Int).Set(l.price), l.active}, nil
	case "getActiveListings":
		offset := params[0].(*big.Int).Int64()
		limit := params[1].(*big.Int).Int64()
		var active []*big.Int
		for _, id := range f.order {
			if f.listings[id].active {
				n, _ := new(big.Int).SetString(id, 10)
				active = append(active, n)
			}
		}
		if offset >= int64(len(active)) {
			return []interface{}{[]*big.Int{}}, nil
		}
		end := offset + limit
		if end > int64(len(active)) {
			end = int64(len(active))
		}
		return []interface{}{active[offset:end]}, nil
	case "getSellerListings":
		seller := domain.Address(params[0].(common.Address).String())
		var ids []*big.Int
		for _, id := range f.order {
			l := f.listings[id]
			if l.active && l.seller.Equals(seller) {
				n, _ := new(big.Int).SetString(id, 10)
				ids = append(ids, n)
			}
		}
		return []interface{}{ids}, nil
	case "marketplaceFee":
		return []interface{}{big.NewInt(f.feeBps)}, nil
	}
	return nil, xerrors.Errorf("unexpected method %s", method)
}

func (h *marketHandle) Transact(c bCtx.Ctx, opts binding.TransactOpts, method string, params ...interface{}) (domain.TxHash, error) {
	f := h.contracts
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transacts++
	switch method {
	case "listNFT":
		id := params[0].(*big.Int).String()
		f.listings[id] = &fakeListing{seller: h.from, price: params[1].(*big.Int), active: true}
		f.order = append(f.order, id)
	case "buyNFT":
		id := params[0].(*big.Int).String()
		l, ok := f.listings[id]
		if !ok || !l.active {
			return "", xerrors.New("execution reverted: not listed")
		}
		if opts.Value == nil || opts.Value.Cmp(l.price) != 0 {
			return "", xerrors.New("execution reverted: wrong price")
		}
		l.active = false
	case "cancelListing":
		id := params[0].(*big.Int).String()
		l, ok := f.listings[id]
		if !ok || !l.seller.Equals(h.from) {
			return "", xerrors.New("execution reverted: not seller")
		}
		l.active = false
	case "updateListingPrice":
		id := params[0].(*big.Int).String()
		l, ok := f.listings[id]
		if !ok || !l.seller.Equals(h.from) {
			return "", xerrors.New("execution reverted: not seller")
		}
		l.price = params[1].(*big.Int)
	default:
		return "", xerrors.Errorf("unexpected method %s", method)
	}
	return "0x00000000000000000000000000000000000000000000000000000000000000ff", nil
}

type collectionHandle struct {
	contracts *fakeContracts
	from      domain.Address
}

func (h *collectionHandle) ContractAddress() domain.Address { return collectionAddr }

func (h *collectionHandle) Call(c bCtx.Ctx, method string, params ...interface{}) ([]interface{}, error) {
	f := h.contracts
	f.mu.Lock()
	defer f.mu.Unlock()
	switch method {
	case "isApprovedForAll":
		owner := domain.Address(params[0].(common.Address).String())
		return []interface{}{f.approvedAll[owner.ToLower()]}, nil
	case "getApproved":
		return []interface{}{common.Address{}}, nil
	}
	return nil, xerrors.Errorf("unexpected method %s", method)
}

func (h *collectionHandle) Transact(c bCtx.Ctx, opts binding.TransactOpts, method string, params ...interface{}) (domain.TxHash, error) {
	f := h.contracts
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transacts++
	if method != "setApprovalForAll" {
		return "", xerrors.Errorf("unexpected method %s", method)
	}
	f.approvedAll[h.from.ToLower()] = params[1].(bool)
	return "0x00000000000000000000000000000000000000000000000000000000000000fe", nil
}

// fakeBinding hands out contract-simulating handles keyed by address.
type fakeBinding struct {
	contracts *fakeContracts
	signer    domain.Address
	writable  bool
}

func (p *fakeBinding) ReadBinding(c bCtx.Ctx, contract domain.Address) (binding.Handle, bool) {
	return p.handle(contract, "")
}

func (p *fakeBinding) WriteBinding(c bCtx.Ctx, contract domain.Address) (binding.Handle, bool) {
	if !p.writable {
		return nil, false
	}
	return p.handle(contract, p.signer)
}

func (p *fakeBinding) Close() {}

func (p *fakeBinding) handle(contract, from domain.Address) (binding.Handle, bool) {
	switch contract {
	case marketAddr:
		return &marketHandle{contracts: p.contracts, from: from}, true
	case collectionAddr:
		return &collectionHandle{contracts: p.contracts, from: from}, true
	}
	return nil, false
}

type fixture struct {
	contracts *fakeContracts
	binding   *fakeBinding
	wallet    *stubWallet
	ens       *ensMocks.ENS
	signal    *refresh.Signal
	usecase   marketplace.Usecase
}

type stubWallet struct {
	session wallet.Session
}

func (w *stubWallet) Connect(c bCtx.Ctx) (domain.Address, error) { return "", nil }
func (w *stubWallet) Disconnect(c bCtx.Ctx)                      {}
func (w *stubWallet) CheckExistingAuthorization(c bCtx.Ctx)      {}
func (w *stubWallet) Session() wallet.Session                    { return w.session }
func (w *stubWallet) OnChange(fn wallet.ObserverFunc) func()     { return func() {} }
func (w *stubWallet) Close()                                     {}

func newFixture(signer domain.Address) *fixture {
	contracts := newFakeContracts()
	chainCli := &chainMocks.Client{}
	chainCli.On("WaitMined", mock.Anything, mock.Anything).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	signal := refresh.New()
	coordinator := txUsecase.New(&txUsecase.TxUseCaseCfg{Chain: chainCli, Refresh: signal})

	addr := signer
	w := &stubWallet{}
	b := &fakeBinding{contracts: contracts}
	if signer != "" {
		w.session.Address = &addr
		b.signer = signer
		b.writable = true
	}

	ensSvc := &ensMocks.ENS{}
	f := &fixture{
		contracts: contracts,
		binding:   b,
		wallet:    w,
		ens:       ensSvc,
		signal:    signal,
	}
	f.usecase = New(&MarketplaceUseCaseCfg{
		Binding:         b,
		Wallet:          w,
		Tx:              coordinator,
		Ens:             ensSvc,
		MarketplaceAddr: marketAddr,
		CollectionAddr:  collectionAddr,
	})
	return f
}

func (f *fixture) approveSeller() {
	f.contracts.approvedAll[f.binding.signer.ToLower()] = true
}

func TestListThenGetListing(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)
	f.approveSeller()

	price := decimal.RequireFromString("1.5")
	pt, err := f.usecase.ListNFT(c, domain.TokenId("7"), price)
	require.NoError(t, err)
	require.NotNil(t, pt)

	listing, err := f.usecase.GetListing(c, domain.TokenId("7"))
	require.NoError(t, err)
	require.NotNil(t, listing)
	require.True(t, listing.Active)
	require.True(t, listing.Actionable())
	require.Equal(t, sellerAddr, listing.Seller)
	require.True(t, price.Equal(listing.Price))
	require.Equal(t, uint64(1), f.signal.Count())
}

func TestListRequiresApproval(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)

	_, err := f.usecase.ListNFT(c, domain.TokenId("7"), decimal.RequireFromString("1"))
	require.ErrorIs(t, err, domain.ErrApprovalRequired)
	// rejection happens locally, nothing was submitted
	require.Equal(t, 0, f.contracts.transacts)
}

func TestListRejectsNonPositivePrice(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)
	f.approveSeller()

	_, err := f.usecase.ListNFT(c, domain.TokenId("7"), decimal.Zero)
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
	_, err = f.usecase.ListNFT(c, domain.TokenId("7"), decimal.RequireFromString("-1"))
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestBuyWithStalePrice(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)
	f.approveSeller()

	_, err := f.usecase.ListNFT(c, domain.TokenId("7"), decimal.RequireFromString("2"))
	require.NoError(t, err)

	// buyer still quotes the old price
	_, err = f.usecase.UpdateListingPrice(c, domain.TokenId("7"), decimal.RequireFromString("3"))
	require.NoError(t, err)

	_, err = f.usecase.BuyNFT(c, domain.TokenId("7"), decimal.RequireFromString("2"))
	var submissionErr *domain.SubmissionError
	require.ErrorAs(t, err, &submissionErr)

	// the listing survives the failed purchase
	listing, err := f.usecase.GetListing(c, domain.TokenId("7"))
	require.NoError(t, err)
	require.True(t, listing.Actionable())
}

func TestBuyDeactivatesListing(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)
	f.approveSeller()

	_, err := f.usecase.ListNFT(c, domain.TokenId("7"), decimal.RequireFromString("2"))
	require.NoError(t, err)

	_, err = f.usecase.BuyNFT(c, domain.TokenId("7"), decimal.RequireFromString("2"))
	require.NoError(t, err)

	listing, err := f.usecase.GetListing(c, domain.TokenId("7"))
	require.NoError(t, err)
	require.False(t, listing.Actionable())
}

func TestCancelListing(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)
	f.approveSeller()

	_, err := f.usecase.ListNFT(c, domain.TokenId("7"), decimal.RequireFromString("2"))
	require.NoError(t, err)

	_, err = f.usecase.CancelListing(c, domain.TokenId("7"))
	require.NoError(t, err)

	listing, err := f.usecase.GetListing(c, domain.TokenId("7"))
	require.NoError(t, err)
	require.False(t, listing.Actionable())

	ids, err := f.usecase.GetActiveListings(c, 0, 10)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestGetActiveListingsPaging(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)
	f.approveSeller()

	for _, id := range []string{"1", "2", "3"} {
		_, err := f.usecase.ListNFT(c, domain.TokenId(id), decimal.RequireFromString("1"))
		require.NoError(t, err)
	}

	ids, err := f.usecase.GetActiveListings(c, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []domain.TokenId{"1", "2"}, ids)

	ids, err = f.usecase.GetActiveListings(c, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []domain.TokenId{"3"}, ids)
}

func TestGetSellerListings(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)
	f.approveSeller()

	_, err := f.usecase.ListNFT(c, domain.TokenId("9"), decimal.RequireFromString("1"))
	require.NoError(t, err)

	ids, err := f.usecase.GetSellerListings(c, sellerAddr)
	require.NoError(t, err)
	require.Equal(t, []domain.TokenId{"9"}, ids)

	ids, err = f.usecase.GetSellerListings(c, buyerAddr)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestHydrateListings(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)
	f.approveSeller()

	_, err := f.usecase.ListNFT(c, domain.TokenId("4"), decimal.RequireFromString("1"))
	require.NoError(t, err)
	_, err = f.usecase.ListNFT(c, domain.TokenId("5"), decimal.RequireFromString("2"))
	require.NoError(t, err)

	listings, err := f.usecase.HydrateListings(c, []domain.TokenId{"4", "5"})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	require.True(t, listings["5"].Price.Equal(decimal.RequireFromString("2")))
}

func TestApproveFlow(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)

	state, err := f.usecase.ApprovalStatus(c, sellerAddr, domain.TokenId("7"))
	require.NoError(t, err)
	require.Equal(t, marketplace.Unapproved, state)

	_, err = f.usecase.Approve(c)
	require.NoError(t, err)

	state, err = f.usecase.ApprovalStatus(c, sellerAddr, domain.TokenId("7"))
	require.NoError(t, err)
	require.Equal(t, marketplace.Approved, state)
}

func TestMutationsRequireSigner(t *testing.T) {
	c := bCtx.Background()
	f := newFixture("")

	_, err := f.usecase.BuyNFT(c, domain.TokenId("7"), decimal.RequireFromString("1"))
	require.ErrorIs(t, err, domain.ErrSignerUnavailable)
	_, err = f.usecase.CancelListing(c, domain.TokenId("7"))
	require.ErrorIs(t, err, domain.ErrSignerUnavailable)
	_, err = f.usecase.ListNFT(c, domain.TokenId("7"), decimal.RequireFromString("1"))
	require.ErrorIs(t, err, domain.ErrSignerUnavailable)
}

func TestFeeBreakdown(t *testing.T) {
	f := newFixture("")

	fee, receives := f.usecase.FeeBreakdown(decimal.RequireFromString("1.5"), 250)
	require.True(t, fee.Equal(decimal.RequireFromString("0.0375")), fee.String())
	require.True(t, receives.Equal(decimal.RequireFromString("1.4625")), receives.String())
}

func TestMarketplaceFeeCached(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)

	feeBps, err := f.usecase.MarketplaceFee(c)
	require.NoError(t, err)
	require.Equal(t, int64(250), feeBps)

	// subsequent reads come from the memo, not the contract
	f.contracts.feeBps = 9999
	feeBps, err = f.usecase.MarketplaceFee(c)
	require.NoError(t, err)
	require.Equal(t, int64(250), feeBps)
}

func TestGetListingViewBreakdown(t *testing.T) {
	c := bCtx.Background()
	f := newFixture(sellerAddr)
	f.approveSeller()
	f.ens.On("ReverseResolve", mock.Anything, sellerAddr).Return("seller.eth", nil)

	_, err := f.usecase.ListNFT(c, domain.TokenId("7"), decimal.RequireFromString("1.5"))
	require.NoError(t, err)

	view, err := f.usecase.GetListingView(c, domain.TokenId("7"))
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Equal(t, "seller.eth", view.SellerName)
	require.True(t, view.Fee.Equal(decimal.RequireFromString("0.0375")))
	require.True(t, view.SellerReceives.Equal(decimal.RequireFromString("1.4625")))
}

func TestGetListingSwallowsLookupFailure(t *testing.T) {
	c := bCtx.Background()
	f := newFixture("")

	// unparseable token ids fail inside the contract call path
	listing, err := f.usecase.GetListing(c, domain.TokenId("not-a-number"))
	require.NoError(t, err)
	require.Nil(t, listing)
}

func TestSoldEventDecoding(t *testing.T) {
	price := domain.ToWei(decimal.RequireFromString("2.5"))
	data, err := xabi.MarketplaceABI.Events["NFTSold"].Inputs.NonIndexed().Pack(price)
	require.NoError(t, err)

	pt := &tx.PendingTransaction{Receipt: &types.Receipt{Logs: []*types.Log{{
		Topics: []common.Hash{
			xabi.NFTSoldTopic(),
			common.HexToHash(sellerAddr.String()),
			common.HexToHash(buyerAddr.String()),
			common.BigToHash(big.NewInt(7)),
		},
		Data: data,
	}}}}

	sold := soldEvent(pt)
	require.NotNil(t, sold)
	require.Equal(t, sellerAddr.ToLowerStr(), strings.ToLower(sold.Seller.Hex()))
	require.Equal(t, buyerAddr.ToLowerStr(), strings.ToLower(sold.Buyer.Hex()))
	require.Equal(t, "7", sold.TokenId.String())
	require.True(t, decimal.RequireFromString("2.5").Equal(domain.FromWei(sold.Price)))
}

func TestListedEventDecoding(t *testing.T) {
	price := domain.ToWei(decimal.NewFromInt(1))
	data, err := xabi.MarketplaceABI.Events["NFTListed"].Inputs.NonIndexed().Pack(price)
	require.NoError(t, err)

	pt := &tx.PendingTransaction{Receipt: &types.Receipt{Logs: []*types.Log{{
		Topics: []common.Hash{
			xabi.NFTListedTopic(),
			common.HexToHash(sellerAddr.String()),
			common.BigToHash(big.NewInt(3)),
		},
		Data: data,
	}}}}

	listed := listedEvent(pt)
	require.NotNil(t, listed)
	require.Equal(t, sellerAddr.ToLowerStr(), strings.ToLower(listed.Seller.Hex()))
	require.Equal(t, "3", listed.TokenId.String())

	// a receipt without the event decodes to nothing
	require.Nil(t, listedEvent(&tx.PendingTransaction{Receipt: &types.Receipt{}}))
	require.Nil(t, soldEvent(nil))
}
