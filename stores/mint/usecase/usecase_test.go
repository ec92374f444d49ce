package usecase

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	xabi "github.com/x-xyz/goclient/base/abi"
	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/refresh"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
	"github.com/x-xyz/goclient/domain/mint"
	"github.com/x-xyz/goclient/domain/wallet"
	chainMocks "github.com/x-xyz/goclient/service/chain/mocks"
	"github.com/x-xyz/goclient/service/storage"
	storageMocks "github.com/x-xyz/goclient/service/storage/mocks"
	txUsecase "github.com/x-xyz/goclient/stores/tx/usecase"
)

const (
	collectionAddr = domain.Address("0x00000000000000000000000000000000000000bb")
	minterAddr     = domain.Address("0xabc0000000000000000000000000000000000001")
)

type fakeCollection struct {
	mintPrice *big.Int
	mints     int
	lastValue *big.Int
	lastUri   string
}

func (f *fakeCollection) ContractAddress() domain.Address { return collectionAddr }

func (f *fakeCollection) Call(c bCtx.Ctx, method string, params ...interface{}) ([]interface{}, error) {
	if method == "mintPrice" {
		return []interface{}{new(big.Int).Set(f.mintPrice)}, nil
	}
	return nil, xerrors.Errorf("unexpected method %s", method)
}

func (f *fakeCollection) Transact(c bCtx.Ctx, opts binding.TransactOpts, method string, params ...interface{}) (domain.TxHash, error) {
	if method != "mint" {
		return "", xerrors.Errorf("unexpected method %s", method)
	}
	f.mints++
	f.lastValue = opts.Value
	f.lastUri = params[1].(string)
	return "0x00000000000000000000000000000000000000000000000000000000000000ff", nil
}

type fakeBinding struct {
	handle   binding.Handle
	writable bool
}

func (p *fakeBinding) ReadBinding(c bCtx.Ctx, contract domain.Address) (binding.Handle, bool) {
	return p.handle, true
}

func (p *fakeBinding) WriteBinding(c bCtx.Ctx, contract domain.Address) (binding.Handle, bool) {
	if !p.writable {
		return nil, false
	}
	return p.handle, true
}

func (p *fakeBinding) Close() {}

type stubWallet struct {
	session wallet.Session
}

func (w *stubWallet) Connect(c bCtx.Ctx) (domain.Address, error) { return "", nil }
func (w *stubWallet) Disconnect(c bCtx.Ctx)                      {}
func (w *stubWallet) CheckExistingAuthorization(c bCtx.Ctx)      {}
func (w *stubWallet) Session() wallet.Session                    { return w.session }
func (w *stubWallet) OnChange(fn wallet.ObserverFunc) func()     { return func() {} }
func (w *stubWallet) Close()                                     {}

func mintReceipt(t *testing.T, tokenId int64, tokenUri string) *types.Receipt {
	t.Helper()
	data, err := xabi.CollectionABI.Events["NFTMinted"].Inputs.NonIndexed().Pack(tokenUri)
	require.NoError(t, err)
	return &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{{
			Topics: []common.Hash{
				xabi.NFTMintedTopic(),
				common.HexToHash(minterAddr.String()),
				common.BigToHash(big.NewInt(tokenId)),
			},
			Data: data,
		}},
	}
}

func newMintUsecase(col *fakeCollection, store storage.Service, receipt *types.Receipt, connected bool) mint.Usecase {
	chainCli := &chainMocks.Client{}
	chainCli.On("WaitMined", mock.Anything, mock.Anything).Return(receipt, nil)
	coordinator := txUsecase.New(&txUsecase.TxUseCaseCfg{Chain: chainCli, Refresh: refresh.New()})

	w := &stubWallet{}
	if connected {
		addr := minterAddr
		w.session.Address = &addr
	}

	return New(&MintUseCaseCfg{
		Binding:        &fakeBinding{handle: col, writable: connected},
		Wallet:         w,
		Tx:             coordinator,
		Storage:        store,
		CollectionAddr: collectionAddr,
	})
}

func TestMint(t *testing.T) {
	c := bCtx.Background()
	col := &fakeCollection{mintPrice: big.NewInt(1000)}

	store := &storageMocks.Service{}
	store.On("Upload", mock.Anything, []byte("img")).
		Return(&storage.UploadResult{Cid: "QmImg", Uri: "ipfs://QmImg"}, nil)
	store.On("UploadJson", mock.Anything, mock.Anything).
		Return(&storage.UploadResult{Cid: "QmMeta", Uri: "ipfs://QmMeta"}, nil)

	u := newMintUsecase(col, store, mintReceipt(t, 42, "ipfs://QmMeta"), true)

	result, err := u.Mint(c, &mint.Request{
		Name:  "Punk",
		Image: []byte("img"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.TokenId("42"), result.TokenId)
	require.Equal(t, "ipfs://QmMeta", result.MetadataUri)
	require.Equal(t, "ipfs://QmImg", result.ImageUri)
	require.NotNil(t, result.Tx)

	require.Equal(t, 1, col.mints)
	require.Equal(t, big.NewInt(1000), col.lastValue)
	require.Equal(t, "ipfs://QmMeta", col.lastUri)
}

func TestMintTokenIdFromTransferFallback(t *testing.T) {
	c := bCtx.Background()
	col := &fakeCollection{mintPrice: big.NewInt(0)}

	store := &storageMocks.Service{}
	store.On("Upload", mock.Anything, mock.Anything).
		Return(&storage.UploadResult{Cid: "QmImg", Uri: "ipfs://QmImg"}, nil)
	store.On("UploadJson", mock.Anything, mock.Anything).
		Return(&storage.UploadResult{Cid: "QmMeta", Uri: "ipfs://QmMeta"}, nil)

	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{{
			Topics: []common.Hash{
				xabi.TransferTopic(),
				common.HexToHash(domain.EmptyAddress.String()),
				common.HexToHash(minterAddr.String()),
				common.BigToHash(big.NewInt(7)),
			},
		}},
	}

	u := newMintUsecase(col, store, receipt, true)
	result, err := u.Mint(c, &mint.Request{Name: "Punk", Image: []byte("x")})
	require.NoError(t, err)
	require.Equal(t, domain.TokenId("7"), result.TokenId)
}

func TestMintValidatesRequest(t *testing.T) {
	c := bCtx.Background()
	u := newMintUsecase(&fakeCollection{mintPrice: big.NewInt(0)}, &storageMocks.Service{}, nil, true)

	_, err := u.Mint(c, &mint.Request{Image: []byte("x")})
	require.ErrorIs(t, err, domain.ErrBadParamInput)
	_, err = u.Mint(c, &mint.Request{Name: "Punk"})
	require.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestMintRequiresSession(t *testing.T) {
	c := bCtx.Background()
	u := newMintUsecase(&fakeCollection{mintPrice: big.NewInt(0)}, &storageMocks.Service{}, nil, false)

	_, err := u.Mint(c, &mint.Request{Name: "Punk", Image: []byte("x")})
	require.ErrorIs(t, err, domain.ErrSignerUnavailable)
}

func TestMintStorageFailureNotRetried(t *testing.T) {
	c := bCtx.Background()
	col := &fakeCollection{mintPrice: big.NewInt(0)}
	store := &storageMocks.Service{}
	boom := xerrors.New("pinning service unavailable")
	store.On("Upload", mock.Anything, mock.Anything).Return(nil, boom).Once()

	u := newMintUsecase(col, store, nil, true)
	_, err := u.Mint(c, &mint.Request{Name: "Punk", Image: []byte("x")})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, col.mints)
	store.AssertNumberOfCalls(t, "Upload", 1)
}
