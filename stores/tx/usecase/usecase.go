package usecase

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/base/metrics"
	"github.com/x-xyz/goclient/base/refresh"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
	"github.com/x-xyz/goclient/domain/tx"
	"github.com/x-xyz/goclient/service/chain"
)

type TxUseCaseCfg struct {
	Chain chain.Client
	// Refresh bumps once per confirmed transaction, after the receipt lands
	// and before the caller's continuation runs.
	Refresh *refresh.Signal
}

type impl struct {
	chain   chain.Client
	refresh *refresh.Signal
	metrics metrics.Service

	mu           sync.RWMutex
	observers    map[int]tx.ObserverFunc
	nextObserver int
}

func New(cfg *TxUseCaseCfg) tx.Coordinator {
	return &impl{
		chain:     cfg.Chain,
		refresh:   cfg.Refresh,
		metrics:   metrics.New("tx"),
		observers: map[int]tx.ObserverFunc{},
	}
}

func (im *impl) Execute(c bCtx.Ctx, kind tx.Kind, h binding.Handle, submit tx.SubmitFunc, onConfirmed tx.OnConfirmedFunc) (*tx.PendingTransaction, error) {
	if h == nil {
		return nil, domain.ErrSignerUnavailable
	}
	// without a chain client the receipt can never be watched; refuse
	// before submitting rather than strand a mined transaction
	if im.chain == nil {
		return nil, domain.ErrContractUnavailable
	}
	defer im.metrics.BumpTime("execute.latency", "kind", string(kind)).End()

	pt := &tx.PendingTransaction{
		Id:          uuid.NewString(),
		Kind:        kind,
		Status:      tx.StatusSubmitting,
		SubmittedAt: time.Now(),
	}
	im.notify(*pt)

	hash, err := submit(c, h)
	if err != nil {
		c.WithFields(log.Fields{
			"kind": kind,
			"err":  err,
		}).Error("transaction submission failed")
		im.metrics.BumpSum("submit.err", 1, "kind", string(kind))
		pt.Status = tx.StatusFailed
		im.notify(*pt)
		return pt, domain.NewSubmissionError(err)
	}

	pt.Hash = hash
	pt.Status = tx.StatusSubmitted
	im.notify(*pt)

	receipt, err := im.chain.WaitMined(c, common.HexToHash(hash.String()))
	if err != nil {
		c.WithFields(log.Fields{
			"kind": kind,
			"hash": hash,
			"err":  err,
		}).Error("confirmation wait failed")
		pt.Status = tx.StatusFailed
		im.notify(*pt)
		return pt, domain.NewConfirmationError(err)
	}
	if receipt.BlockNumber != nil {
		pt.BlockNumber = domain.BlockNumber(receipt.BlockNumber.Uint64())
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.WithFields(log.Fields{
			"kind": kind,
			"hash": hash,
		}).Error("transaction reverted")
		im.metrics.BumpSum("revert", 1, "kind", string(kind))
		pt.Status = tx.StatusFailed
		pt.Receipt = receipt
		im.notify(*pt)
		return pt, domain.NewConfirmationError(xerrors.Errorf("transaction %s reverted", hash))
	}

	pt.Receipt = receipt
	pt.Status = tx.StatusConfirmed
	im.notify(*pt)

	if im.refresh != nil {
		im.refresh.Bump()
	}
	if onConfirmed != nil {
		onConfirmed(c)
	}
	return pt, nil
}

func (im *impl) OnStatus(fn tx.ObserverFunc) func() {
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

func (im *impl) notify(snapshot tx.PendingTransaction) {
	im.mu.RLock()
	observers := make([]tx.ObserverFunc, 0, len(im.observers))
	for _, fn := range im.observers {
		observers = append(observers, fn)
	}
	im.mu.RUnlock()
	for _, fn := range observers {
		fn(snapshot)
	}
}
