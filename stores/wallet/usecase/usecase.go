package usecase

import (
	"sync"

	"github.com/ethereum/go-ethereum/rpc"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/wallet"
)

// eip-1193 user rejection code
const errCodeUserRejected = 4001

type WalletUseCaseCfg struct {
	// Provider may be nil: the client runs in wallet-less read mode and
	// Connect fails with domain.ErrWalletUnavailable.
	Provider wallet.Provider
	// OnChainChanged is the deliberately heavy-handed reset hook: contract
	// addresses are chain-specific and no partial-state reconciliation is
	// attempted.
	OnChainChanged func()
}

type impl struct {
	provider       wallet.Provider
	onChainChanged func()

	mu           sync.RWMutex
	session      wallet.Session
	observers    map[int]wallet.ObserverFunc
	nextObserver int
}

func New(c bCtx.Ctx, cfg *WalletUseCaseCfg) wallet.Usecase {
	im := &impl{
		provider:       cfg.Provider,
		onChainChanged: cfg.OnChainChanged,
		observers:      map[int]wallet.ObserverFunc{},
	}

	if im.provider != nil {
		im.provider.On(wallet.EventAccountsChanged, func(payload interface{}) {
			accounts, ok := payload.([]string)
			if !ok {
				c.WithField("payload", payload).Warn("unexpected accountsChanged payload")
				return
			}
			im.handleAccountsChanged(c, accounts)
		})
		im.provider.On(wallet.EventChainChanged, func(payload interface{}) {
			c.WithField("chainId", payload).Info("chain changed, forcing full reset")
			if im.onChainChanged != nil {
				im.onChainChanged()
			}
		})
	}

	return im
}

func (im *impl) Connect(c bCtx.Ctx) (domain.Address, error) {
	if im.provider == nil {
		return "", domain.ErrWalletUnavailable
	}

	im.setConnecting(true)
	defer im.setConnecting(false)

	var accounts []string
	if err := im.provider.Request(c, &accounts, "eth_requestAccounts"); err != nil {
		c.WithField("err", err).Error("eth_requestAccounts failed")
		if rpcErr, ok := err.(rpc.Error); ok && rpcErr.ErrorCode() == errCodeUserRejected {
			return "", domain.ErrUserRejected
		}
		return "", err
	}
	if len(accounts) == 0 {
		im.clearAddress()
		return "", domain.ErrUserRejected
	}

	addr := domain.Address(accounts[0]).ToLower()
	im.setAddress(addr)
	return addr, nil
}

func (im *impl) Disconnect(c bCtx.Ctx) {
	im.clearAddress()
}

func (im *impl) CheckExistingAuthorization(c bCtx.Ctx) {
	if im.provider == nil {
		// no capability injected; silently leave the session absent
		return
	}

	var accounts []string
	if err := im.provider.Request(c, &accounts, "eth_accounts"); err != nil {
		c.WithField("err", err).Warn("eth_accounts check failed")
		return
	}
	if len(accounts) > 0 {
		im.setAddress(domain.Address(accounts[0]).ToLower())
	}
}

func (im *impl) Session() wallet.Session {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.session
}

func (im *impl) OnChange(fn wallet.ObserverFunc) func() {
	im.mu.Lock()
	id := im.nextObserver
	im.nextObserver++
	im.observers[id] = fn
	im.mu.Unlock()
	return func() {
		im.mu.Lock()
		defer im.mu.Unlock()
		delete(im.observers, id)
	}
}

func (im *impl) Close() {
	if im.provider != nil {
		im.provider.RemoveListener(wallet.EventAccountsChanged)
		im.provider.RemoveListener(wallet.EventChainChanged)
	}
}

// handleAccountsChanged replaces the session address with the new first
// account, or clears the session when the wallet reports none.
func (im *impl) handleAccountsChanged(c bCtx.Ctx, accounts []string) {
	if len(accounts) == 0 {
		c.Info("wallet reported zero authorized accounts")
		im.clearAddress()
		return
	}
	addr := domain.Address(accounts[0]).ToLower()
	c.WithFields(log.Fields{"address": addr}).Info("wallet account changed")
	im.setAddress(addr)
}

func (im *impl) setAddress(addr domain.Address) {
	im.mu.Lock()
	im.session.Address = &addr
	snapshot := im.session
	observers := im.snapshotObservers()
	im.mu.Unlock()
	notify(observers, snapshot)
}

func (im *impl) clearAddress() {
	im.mu.Lock()
	im.session.Address = nil
	snapshot := im.session
	observers := im.snapshotObservers()
	im.mu.Unlock()
	notify(observers, snapshot)
}

func (im *impl) setConnecting(connecting bool) {
	im.mu.Lock()
	im.session.Connecting = connecting
	snapshot := im.session
	observers := im.snapshotObservers()
	im.mu.Unlock()
	notify(observers, snapshot)
}

// callers must hold im.mu
func (im *impl) snapshotObservers() []wallet.ObserverFunc {
	observers := make([]wallet.ObserverFunc, 0, len(im.observers))
	for _, fn := range im.observers {
		observers = append(observers, fn)
	}
	return observers
}

func notify(observers []wallet.ObserverFunc, snapshot wallet.Session) {
	for _, fn := range observers {
		fn(snapshot)
	}
}
