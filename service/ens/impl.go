package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/base/ptr"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/service/cache"
	"github.com/x-xyz/goclient/service/cache/provider/primitive"
)

type impl struct {
	client *ethclient.Client
	cache  cache.Service
}

func New(rpc string) ENS {
	client, err := ethclient.Dial(rpc)
	if err != nil {
		panic(err)
	}
	return &impl{
		client,
		cache.New(cache.ServiceConfig{
			Ttl:   30 * time.Minute,
			Pfx:   "ens",
			Cache: primitive.NewPrimitive("ens", 8),
		}),
	}
}

func (im *impl) ReverseResolve(ctx bCtx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := "reverse-resolve:" + address.ToLowerStr()
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := goens.ReverseResolve(im.client, common.HexToAddress(string(address)))
		if fmt.Sprint(err) == "not a resolver" {
			return ptr.String(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}
