package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var CollectionABI abi.ABI

var collectionABI = `[{"type":"function","name":"mint","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"address","name":"to"},{"type":"string","name":"tokenURI"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"owner"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"tokenOfOwnerByIndex","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"owner"},{"type":"uint256","name":"index"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"tokenURI","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string"}]},{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},{"type":"function","name":"totalSupply","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"mintPrice","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"approve","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"address","name":"to"},{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"getApproved","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},{"type":"function","name":"setApprovalForAll","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"address","name":"operator"},{"type":"bool","name":"approved"}],"outputs":[]},{"type":"function","name":"isApprovedForAll","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"owner"},{"type":"address","name":"operator"}],"outputs":[{"type":"bool"}]},{"type":"event","anonymous":false,"name":"Transfer","inputs":[{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]},{"type":"event","anonymous":false,"name":"NFTMinted","inputs":[{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"string","name":"tokenURI"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(collectionABI))
	if err != nil {
		panic("Failed to parse collection abi")
	}
	CollectionABI = _abi
}

type TransferLog struct {
	From    common.Address // indexed
	To      common.Address // indexed
	TokenId *big.Int       // indexed
}

type NFTMintedLog struct {
	To       common.Address // indexed
	TokenId  *big.Int       // indexed
	TokenURI string
}

func ToTransferLog(log *types.Log) (*TransferLog, error) {
	var transfer TransferLog
	// all three fields are indexed; nothing lives in log.Data
	transfer.From = common.BytesToAddress(log.Topics[1].Bytes())
	transfer.To = common.BytesToAddress(log.Topics[2].Bytes())
	transfer.TokenId = new(big.Int).SetBytes(log.Topics[3].Bytes())
	return &transfer, nil
}

func ToNFTMintedLog(log *types.Log) (*NFTMintedLog, error) {
	var minted NFTMintedLog
	if err := CollectionABI.UnpackIntoInterface(&minted, "NFTMinted", log.Data); err != nil {
		return nil, err
	}
	minted.To = common.BytesToAddress(log.Topics[1].Bytes())
	minted.TokenId = new(big.Int).SetBytes(log.Topics[2].Bytes())
	return &minted, nil
}

// NFTMintedTopic is the keccak topic of the NFTMinted event.
func NFTMintedTopic() common.Hash {
	return CollectionABI.Events["NFTMinted"].ID
}

// TransferTopic is the keccak topic of the Transfer event.
func TransferTopic() common.Hash {
	return CollectionABI.Events["Transfer"].ID
}
