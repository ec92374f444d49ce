package cache

import (
	"errors"
	"time"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/service/cache/provider"
)

var (
	ErrNotFound = errors.New("cache not found")
)

type OneTimeGetter func() (interface{}, error)

// Service is the typed layer over a raw byte provider. Values serialize as
// json; chain state stays the source of truth and entries only smooth
// rendering, so TTLs are short.
type Service interface {
	GetByFunc(c bCtx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c bCtx.Ctx, key string, container interface{}) error
	Set(c bCtx.Ctx, key string, value interface{}) error
	Del(c bCtx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
}
