package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/wallet"
)

type fakeRpcError struct {
	code int
}

func (e *fakeRpcError) Error() string  { return "denied" }
func (e *fakeRpcError) ErrorCode() int { return e.code }

// fakeProvider records handlers so tests can emit wallet events, and
// answers account queries from a canned list.
type fakeProvider struct {
	accounts   []string
	requestErr error
	requests   []string
	handlers   map[wallet.Event]wallet.EventHandler
}

func newFakeProvider(accounts ...string) *fakeProvider {
	return &fakeProvider{
		accounts: accounts,
		handlers: map[wallet.Event]wallet.EventHandler{},
	}
}

func (p *fakeProvider) Request(c bCtx.Ctx, result interface{}, method string, params ...interface{}) error {
	p.requests = append(p.requests, method)
	if p.requestErr != nil {
		return p.requestErr
	}
	if out, ok := result.(*[]string); ok {
		*out = p.accounts
	}
	return nil
}

func (p *fakeProvider) On(event wallet.Event, handler wallet.EventHandler) {
	p.handlers[event] = handler
}

func (p *fakeProvider) RemoveListener(event wallet.Event) {
	delete(p.handlers, event)
}

func (p *fakeProvider) Close() {}

func (p *fakeProvider) emit(event wallet.Event, payload interface{}) {
	if h, ok := p.handlers[event]; ok {
		h(payload)
	}
}

func TestConnect(t *testing.T) {
	c := bCtx.Background()
	provider := newFakeProvider("0xAbC0000000000000000000000000000000000001")
	u := New(c, &WalletUseCaseCfg{Provider: provider})
	defer u.Close()

	addr, err := u.Connect(c)
	require.NoError(t, err)
	require.Equal(t, domain.Address("0xabc0000000000000000000000000000000000001"), addr)
	require.True(t, u.Session().Connected())
	require.False(t, u.Session().Connecting)
}

func TestConnectUserRejected(t *testing.T) {
	c := bCtx.Background()
	provider := newFakeProvider()
	provider.requestErr = &fakeRpcError{code: 4001}
	u := New(c, &WalletUseCaseCfg{Provider: provider})
	defer u.Close()

	_, err := u.Connect(c)
	require.ErrorIs(t, err, domain.ErrUserRejected)
	require.False(t, u.Session().Connected())
}

func TestConnectWithoutProvider(t *testing.T) {
	c := bCtx.Background()
	u := New(c, &WalletUseCaseCfg{})
	defer u.Close()

	_, err := u.Connect(c)
	require.ErrorIs(t, err, domain.ErrWalletUnavailable)
}

func TestCheckExistingAuthorization(t *testing.T) {
	c := bCtx.Background()
	provider := newFakeProvider("0xabc0000000000000000000000000000000000001")
	u := New(c, &WalletUseCaseCfg{Provider: provider})
	defer u.Close()

	u.CheckExistingAuthorization(c)
	require.True(t, u.Session().Connected())
	require.Equal(t, []string{"eth_accounts"}, provider.requests)
}

func TestCheckExistingAuthorizationNoAccounts(t *testing.T) {
	c := bCtx.Background()
	provider := newFakeProvider()
	u := New(c, &WalletUseCaseCfg{Provider: provider})
	defer u.Close()

	u.CheckExistingAuthorization(c)
	require.False(t, u.Session().Connected())
}

func TestAccountsChangedFolding(t *testing.T) {
	c := bCtx.Background()
	provider := newFakeProvider("0xabc0000000000000000000000000000000000001")
	u := New(c, &WalletUseCaseCfg{Provider: provider})
	defer u.Close()

	_, err := u.Connect(c)
	require.NoError(t, err)

	// a new first account replaces the session address
	provider.emit(wallet.EventAccountsChanged, []string{"0xDef0000000000000000000000000000000000002"})
	require.Equal(t, domain.Address("0xdef0000000000000000000000000000000000002"), *u.Session().Address)

	// an empty list clears the session entirely
	provider.emit(wallet.EventAccountsChanged, []string{})
	require.False(t, u.Session().Connected())
}

func TestChainChangedTriggersReset(t *testing.T) {
	c := bCtx.Background()
	provider := newFakeProvider("0xabc0000000000000000000000000000000000001")
	resets := 0
	u := New(c, &WalletUseCaseCfg{
		Provider:       provider,
		OnChainChanged: func() { resets++ },
	})
	defer u.Close()

	provider.emit(wallet.EventChainChanged, "0x5")
	require.Equal(t, 1, resets)
}

func TestObservers(t *testing.T) {
	c := bCtx.Background()
	provider := newFakeProvider("0xabc0000000000000000000000000000000000001")
	u := New(c, &WalletUseCaseCfg{Provider: provider})
	defer u.Close()

	var seen []wallet.Session
	unsub := u.OnChange(func(s wallet.Session) { seen = append(seen, s) })

	_, err := u.Connect(c)
	require.NoError(t, err)
	// connecting=true, address set, connecting=false
	require.Len(t, seen, 3)
	require.True(t, seen[1].Connected())

	unsub()
	u.Disconnect(c)
	require.Len(t, seen, 3)
	require.False(t, u.Session().Connected())
}
