package usecase

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
	"github.com/x-xyz/goclient/domain/wallet"
	"github.com/x-xyz/goclient/service/chain"
)

type BindingUseCaseCfg struct {
	// Chain may be nil when the rpc endpoint is unreachable; read bindings
	// then resolve to false instead of failing construction.
	Chain chain.Client
	// Wallet provides the session the write side is keyed on.
	Wallet wallet.Usecase
	// Signer is the wallet capability write handles submit through. Nil in
	// read-only mode.
	Signer wallet.Provider
	// Abis fixes the interface for each known contract address. A handle's
	// abi never changes after provider construction.
	Abis map[domain.Address]abi.ABI
}

type impl struct {
	chain  chain.Client
	wallet wallet.Usecase
	signer wallet.Provider
	abis   map[domain.Address]abi.ABI

	mu      sync.Mutex
	handles map[string]binding.Handle
	unsub   func()
}

func New(c bCtx.Ctx, cfg *BindingUseCaseCfg) binding.Provider {
	abis := make(map[domain.Address]abi.ABI, len(cfg.Abis))
	for addr, _abi := range cfg.Abis {
		abis[addr.ToLower()] = _abi
	}
	im := &impl{
		chain:   cfg.Chain,
		wallet:  cfg.Wallet,
		signer:  cfg.Signer,
		abis:    abis,
		handles: map[string]binding.Handle{},
	}
	if cfg.Wallet != nil {
		// any signer change invalidates memoized write handles. read handles
		// are session-independent and survive.
		im.unsub = cfg.Wallet.OnChange(func(wallet.Session) {
			im.dropWriteHandles()
		})
	}
	return im
}

func (im *impl) ReadBinding(c bCtx.Ctx, contract domain.Address) (binding.Handle, bool) {
	if im.chain == nil {
		return nil, false
	}
	_abi, ok := im.abis[contract.ToLower()]
	if !ok {
		c.WithField("contract", contract).Warn("no abi registered for contract")
		return nil, false
	}

	key := "r|" + contract.ToLowerStr()
	im.mu.Lock()
	defer im.mu.Unlock()
	if h, ok := im.handles[key]; ok {
		return h, true
	}
	h := &readHandle{contract: contract.ToLower(), abi: _abi, chain: im.chain}
	im.handles[key] = h
	return h, true
}

func (im *impl) WriteBinding(c bCtx.Ctx, contract domain.Address) (binding.Handle, bool) {
	if im.signer == nil || im.wallet == nil {
		return nil, false
	}
	session := im.wallet.Session()
	if !session.Connected() {
		return nil, false
	}
	_abi, ok := im.abis[contract.ToLower()]
	if !ok {
		c.WithField("contract", contract).Warn("no abi registered for contract")
		return nil, false
	}

	from := session.Address.ToLower()
	key := "w|" + contract.ToLowerStr() + "|" + from.ToLowerStr()
	im.mu.Lock()
	defer im.mu.Unlock()
	if h, ok := im.handles[key]; ok {
		return h, true
	}
	h := &writeHandle{
		readHandle: readHandle{contract: contract.ToLower(), abi: _abi, chain: im.chain},
		signer:     im.signer,
		from:       from,
	}
	im.handles[key] = h
	return h, true
}

func (im *impl) Close() {
	if im.unsub != nil {
		im.unsub()
	}
}

func (im *impl) dropWriteHandles() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for key := range im.handles {
		if strings.HasPrefix(key, "w|") {
			delete(im.handles, key)
		}
	}
}

// readHandle resolves Call through the chain client and rejects Transact.
type readHandle struct {
	contract domain.Address
	abi      abi.ABI
	chain    chain.Client
}

func (h *readHandle) ContractAddress() domain.Address {
	return h.contract
}

func (h *readHandle) Call(c bCtx.Ctx, method string, params ...interface{}) ([]interface{}, error) {
	if h.chain == nil {
		return nil, domain.ErrContractUnavailable
	}
	return h.chain.Call(c, common.HexToAddress(h.contract.String()), h.abi, method, params...)
}

func (h *readHandle) Transact(c bCtx.Ctx, opts binding.TransactOpts, method string, params ...interface{}) (domain.TxHash, error) {
	return "", domain.ErrSignerUnavailable
}

// writeHandle extends a read handle with submission through the wallet's
// signing rpc. The node holds the key; the client never signs locally.
type writeHandle struct {
	readHandle
	signer wallet.Provider
	from   domain.Address
}

func (h *writeHandle) Transact(c bCtx.Ctx, opts binding.TransactOpts, method string, params ...interface{}) (domain.TxHash, error) {
	data, err := h.abi.Pack(method, params...)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Pack failed")
		return "", err
	}

	txArgs := map[string]interface{}{
		"from": h.from.ToLowerStr(),
		"to":   h.contract.ToLowerStr(),
		"data": hexutil.Encode(data),
	}
	if opts.Value != nil && opts.Value.Sign() > 0 {
		txArgs["value"] = hexutil.EncodeBig(opts.Value)
	}

	var hash string
	if err := h.signer.Request(c, &hash, "eth_sendTransaction", txArgs); err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("eth_sendTransaction failed")
		return "", err
	}
	return domain.TxHash(hash), nil
}
