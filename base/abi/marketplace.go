package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var MarketplaceABI abi.ABI

var marketplaceABI = `[{"type":"function","name":"listNFT","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}],"outputs":[]},{"type":"function","name":"buyNFT","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"cancelListing","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},{"type":"function","name":"updateListingPrice","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"newPrice"}],"outputs":[]},{"type":"function","name":"getListing","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address","name":"seller"},{"type":"uint256","name":"price"},{"type":"bool","name":"active"}]},{"type":"function","name":"getActiveListings","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"offset"},{"type":"uint256","name":"limit"}],"outputs":[{"type":"uint256[]"}]},{"type":"function","name":"getSellerListings","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"seller"}],"outputs":[{"type":"uint256[]"}]},{"type":"function","name":"marketplaceFee","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},{"type":"event","anonymous":false,"name":"NFTListed","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"price"}]},{"type":"event","anonymous":false,"name":"NFTSold","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"address","name":"buyer","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"price"}]},{"type":"event","anonymous":false,"name":"ListingCancelled","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

type NFTListedLog struct {
	Seller  common.Address // indexed
	TokenId *big.Int       // indexed
	Price   *big.Int
}

type NFTSoldLog struct {
	Seller  common.Address // indexed
	Buyer   common.Address // indexed
	TokenId *big.Int       // indexed
	Price   *big.Int
}

func ToNFTListedLog(log *types.Log) (*NFTListedLog, error) {
	var listed NFTListedLog
	if err := MarketplaceABI.UnpackIntoInterface(&listed, "NFTListed", log.Data); err != nil {
		return nil, err
	}
	listed.Seller = common.BytesToAddress(log.Topics[1].Bytes())
	listed.TokenId = new(big.Int).SetBytes(log.Topics[2].Bytes())
	return &listed, nil
}

func ToNFTSoldLog(log *types.Log) (*NFTSoldLog, error) {
	var sold NFTSoldLog
	if err := MarketplaceABI.UnpackIntoInterface(&sold, "NFTSold", log.Data); err != nil {
		return nil, err
	}
	sold.Seller = common.BytesToAddress(log.Topics[1].Bytes())
	sold.Buyer = common.BytesToAddress(log.Topics[2].Bytes())
	sold.TokenId = new(big.Int).SetBytes(log.Topics[3].Bytes())
	return &sold, nil
}

// NFTSoldTopic is the keccak topic of the NFTSold event.
func NFTSoldTopic() common.Hash {
	return MarketplaceABI.Events["NFTSold"].ID
}

// NFTListedTopic is the keccak topic of the NFTListed event.
func NFTListedTopic() common.Hash {
	return MarketplaceABI.Events["NFTListed"].ID
}
