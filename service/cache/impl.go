package cache

import (
	"encoding/json"
	"time"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/service/cache/provider"
)

type impl struct {
	ttl   time.Duration
	pfx   string
	cache provider.Provider
}

func New(config ServiceConfig) Service {
	return &impl{
		ttl:   config.Ttl,
		pfx:   config.Pfx,
		cache: config.Cache,
	}
}

func (im *impl) GetByFunc(c bCtx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err != nil && err != ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("Get failed")
		return err
	} else if err == nil {
		// hit cache, early return
		return nil
	}

	// no cache, get and fill cache
	val, err := getter()
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("GetByFunc getter failed")
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Set failed")
	}

	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, container)
}

func (im *impl) Get(c bCtx.Ctx, key string, container interface{}) error {
	key = im.pfx + ":" + key

	val, _, err := im.cache.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return json.Unmarshal(val, container)
}

func (im *impl) Set(c bCtx.Ctx, key string, value interface{}) error {
	key = im.pfx + ":" + key

	data, err := json.Marshal(value)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("json.Marshal failed")
		return err
	}
	return im.cache.Set(c, key, data, im.ttl)
}

func (im *impl) Del(c bCtx.Ctx, key string) error {
	key = im.pfx + ":" + key
	return im.cache.Del(c, key)
}
