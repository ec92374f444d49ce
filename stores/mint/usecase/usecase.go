package usecase

import (
	playgroundValidator "github.com/go-playground/validator/v10"

	xabi "github.com/x-xyz/goclient/base/abi"
	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/base/validator"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
	"github.com/x-xyz/goclient/domain/mint"
	"github.com/x-xyz/goclient/domain/token"
	"github.com/x-xyz/goclient/domain/tx"
	"github.com/x-xyz/goclient/domain/wallet"
	"github.com/x-xyz/goclient/service/chain/contract"
	"github.com/x-xyz/goclient/service/storage"
)

type MintUseCaseCfg struct {
	Binding        binding.Provider
	Wallet         wallet.Usecase
	Tx             tx.Coordinator
	Storage        storage.Service
	CollectionAddr domain.Address
}

type impl struct {
	binding        binding.Provider
	wallet         wallet.Usecase
	tx             tx.Coordinator
	storage        storage.Service
	collectionAddr domain.Address
	validate       *playgroundValidator.Validate
}

func New(cfg *MintUseCaseCfg) mint.Usecase {
	return &impl{
		binding:        cfg.Binding,
		wallet:         cfg.Wallet,
		tx:             cfg.Tx,
		storage:        cfg.Storage,
		collectionAddr: cfg.CollectionAddr,
		validate:       validator.New(),
	}
}

func (im *impl) Mint(c bCtx.Ctx, req *mint.Request) (*mint.Result, error) {
	if err := im.validate.Struct(req); err != nil {
		c.WithField("err", err).Warn("invalid mint request")
		return nil, domain.ErrBadParamInput
	}
	session := im.wallet.Session()
	if !session.Connected() {
		return nil, domain.ErrSignerUnavailable
	}
	to := *session.Address

	imageRes, err := im.storage.Upload(c, req.Image)
	if err != nil {
		c.WithField("err", err).Error("image upload failed")
		return nil, err
	}

	metadataRes, err := im.storage.UploadJson(c, &token.Metadata{
		Name:        req.Name,
		Description: req.Description,
		Image:       imageRes.Uri,
		Attributes:  req.Attributes,
	})
	if err != nil {
		c.WithField("err", err).Error("metadata upload failed")
		return nil, err
	}

	readHandle, ok := im.binding.ReadBinding(c, im.collectionAddr)
	if !ok {
		return nil, domain.ErrContractUnavailable
	}
	mintPrice, err := contract.NewErc721(readHandle).MintPrice(c)
	if err != nil {
		c.WithField("err", err).Error("mintPrice failed")
		return nil, err
	}

	writeHandle, _ := im.binding.WriteBinding(c, im.collectionAddr)
	pt, err := im.tx.Execute(c, tx.KindMint, writeHandle, func(c bCtx.Ctx, h binding.Handle) (domain.TxHash, error) {
		return contract.NewErc721(h).Mint(c, mintPrice, to, metadataRes.Uri)
	}, nil)
	if err != nil {
		return nil, err
	}

	result := &mint.Result{
		MetadataUri: metadataRes.Uri,
		ImageUri:    imageRes.Uri,
		Tx:          pt,
	}
	result.TokenId = mintedTokenId(c, pt)
	return result, nil
}

// mintedTokenId recovers the new token id from the receipt, preferring the
// NFTMinted event and falling back to the mint Transfer. An empty id means
// the mint confirmed but emitted nothing recognizable.
func mintedTokenId(c bCtx.Ctx, pt *tx.PendingTransaction) domain.TokenId {
	if pt == nil || pt.Receipt == nil {
		return ""
	}
	for _, l := range pt.Receipt.Logs {
		if len(l.Topics) == 0 {
			continue
		}
		switch l.Topics[0] {
		case xabi.NFTMintedTopic():
			if len(l.Topics) != 3 {
				continue
			}
			minted, err := xabi.ToNFTMintedLog(l)
			if err != nil {
				c.WithField("err", err).Warn("NFTMinted decode failed")
				continue
			}
			return domain.TokenIdFromBig(minted.TokenId)
		case xabi.TransferTopic():
			if len(l.Topics) != 4 {
				continue
			}
			transfer, err := xabi.ToTransferLog(l)
			if err != nil {
				continue
			}
			if domain.Address(transfer.From.Hex()).IsEmpty() {
				return domain.TokenIdFromBig(transfer.TokenId)
			}
		}
	}
	c.WithFields(log.Fields{"hash": pt.Hash}).Warn("mint receipt has no mint event")
	return ""
}
