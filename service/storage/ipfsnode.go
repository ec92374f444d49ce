package storage

import (
	"bytes"
	"encoding/json"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	bCtx "github.com/x-xyz/goclient/base/ctx"
)

type ipfsNodeImpl struct {
	shell *ipfsapi.Shell
}

// NewIpfsNode uploads through a self-hosted ipfs node's HTTP API instead of
// a pinning provider.
func NewIpfsNode(nodeUrl string) Service {
	return &ipfsNodeImpl{shell: ipfsapi.NewShell(nodeUrl)}
}

func (im *ipfsNodeImpl) Upload(c bCtx.Ctx, blob []byte) (*UploadResult, error) {
	cid, err := im.shell.Add(bytes.NewReader(blob), ipfsapi.Pin(true))
	if err != nil {
		c.WithField("err", err).Error("shell.Add failed")
		return nil, err
	}
	return &UploadResult{Cid: cid, Uri: ipfsScheme + cid}, nil
}

func (im *ipfsNodeImpl) UploadJson(c bCtx.Ctx, value interface{}) (*UploadResult, error) {
	data, err := json.Marshal(value)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}
	return im.Upload(c, data)
}
