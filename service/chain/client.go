package chain

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/base/metrics"
)

var ErrChainUnreachable = errors.New("chain unreachable")

const defaultReceiptPollInterval = 2 * time.Second

type ClientCfg struct {
	RpcUrl string
	// ReceiptPollInterval bounds how often WaitMined polls; it is not a
	// timeout. Confirmation waits resolve when the network resolves them.
	ReceiptPollInterval time.Duration
}

type Client interface {
	Call(c bCtx.Ctx, contract common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	TransactionReceipt(c bCtx.Ctx, hash common.Hash) (*types.Receipt, error)
	WaitMined(c bCtx.Ctx, hash common.Hash) (*types.Receipt, error)
}

type clientImpl struct {
	client       *ethclient.Client
	pollInterval time.Duration
	metrics      metrics.Service
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	pollInterval := cfg.ReceiptPollInterval
	if pollInterval <= 0 {
		pollInterval = defaultReceiptPollInterval
	}
	return &clientImpl{
		client:       client,
		pollInterval: pollInterval,
		metrics:      metrics.New("chain"),
	}, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, contract common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	defer c.metrics.BumpTime("call.latency", "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		c.metrics.BumpSum("call.err", 1, "method", method)
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) TransactionReceipt(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	return c.client.TransactionReceipt(ctx, hash)
}

// WaitMined blocks until the chain reports the transaction mined. There is
// no client-enforced timeout; a premature give-up would desynchronize local
// state from chain truth. The wait ends early only if ctx is cancelled.
func (c *clientImpl) WaitMined(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	defer c.metrics.BumpTime("wait_mined.latency").End()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			ctx.WithFields(log.Fields{
				"err":  err,
				"hash": hash.Hex(),
			}).Error("client.TransactionReceipt failed")
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
