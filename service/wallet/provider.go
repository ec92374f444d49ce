package wallet

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/rpc"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/domain"
	walletDomain "github.com/x-xyz/goclient/domain/wallet"
)

const defaultPollInterval = 4 * time.Second

type ProviderCfg struct {
	// RpcUrl points at the wallet endpoint (a node or remote signer that
	// answers eth_accounts / eth_sendTransaction for its own keys).
	RpcUrl string
	// PollInterval controls how often accounts and chain id are re-read to
	// synthesize accountsChanged / chainChanged notifications.
	PollInterval time.Duration
}

type providerImpl struct {
	client *rpc.Client

	mu       sync.RWMutex
	handlers map[walletDomain.Event][]walletDomain.EventHandler

	lastAccounts []string
	lastChainId  string

	stop chan struct{}
	done chan struct{}
}

// NewProvider dials the wallet endpoint and starts the event poll loop.
// A dial failure means no capability is injected; callers surface that as
// domain.ErrWalletUnavailable.
func NewProvider(ctx bCtx.Ctx, cfg *ProviderCfg) (walletDomain.Provider, error) {
	client, err := rpc.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Warn("failed to dial wallet endpoint")
		return nil, domain.ErrWalletUnavailable
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	p := &providerImpl{
		client:   client,
		handlers: map[walletDomain.Event][]walletDomain.EventHandler{},
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go p.pollLoop(ctx, pollInterval)
	return p, nil
}

func (p *providerImpl) Request(c bCtx.Ctx, result interface{}, method string, params ...interface{}) error {
	// a node-backed wallet has no prompt; authorization is implicit, so the
	// prompting request degrades to the silent one
	if method == "eth_requestAccounts" {
		method = "eth_accounts"
	}
	if err := p.client.CallContext(c, result, method, params...); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("wallet request failed")
		return err
	}
	return nil
}

func (p *providerImpl) On(event walletDomain.Event, handler walletDomain.EventHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[event] = append(p.handlers[event], handler)
}

func (p *providerImpl) RemoveListener(event walletDomain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.handlers, event)
}

func (p *providerImpl) Close() {
	close(p.stop)
	<-p.done
	p.client.Close()
}

func (p *providerImpl) emit(event walletDomain.Event, payload interface{}) {
	p.mu.RLock()
	handlers := append([]walletDomain.EventHandler{}, p.handlers[event]...)
	p.mu.RUnlock()
	for _, h := range handlers {
		h(payload)
	}
}

// pollLoop re-reads eth_accounts and eth_chainId to mimic the notifications
// a browser-injected provider pushes.
func (p *providerImpl) pollLoop(ctx bCtx.Ctx, interval time.Duration) {
	defer close(p.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
		}

		var accounts []string
		if err := p.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
			ctx.WithField("err", err).Warn("eth_accounts poll failed")
		} else if !equalAccounts(accounts, p.lastAccounts) {
			p.lastAccounts = accounts
			p.emit(walletDomain.EventAccountsChanged, accounts)
		}

		var chainId string
		if err := p.client.CallContext(ctx, &chainId, "eth_chainId"); err != nil {
			ctx.WithField("err", err).Warn("eth_chainId poll failed")
		} else if p.lastChainId != "" && chainId != p.lastChainId {
			p.lastChainId = chainId
			p.emit(walletDomain.EventChainChanged, chainId)
		} else if p.lastChainId == "" {
			p.lastChainId = chainId
		}
	}
}

func equalAccounts(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
