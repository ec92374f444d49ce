package provider

import (
	"errors"
	"time"

	bCtx "github.com/x-xyz/goclient/base/ctx"
)

var (
	ErrNotFound = errors.New("cache not found")
)

// raw cache implementation
type Provider interface {
	Get(c bCtx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c bCtx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c bCtx.Ctx, key string) error
}
