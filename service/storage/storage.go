package storage

import (
	"errors"
	"strings"

	bCtx "github.com/x-xyz/goclient/base/ctx"
)

var (
	ErrRequestFailed = errors.New("storage request failed")
)

// UploadResult identifies pinned content. Uri is the canonical ipfs:// form
// that goes on chain as a tokenURI.
type UploadResult struct {
	Cid string `json:"cid"`
	Uri string `json:"uri"`
}

// Service is the external file-storage collaborator. Uploads are opaque to
// the rest of the client and never retried on failure.
type Service interface {
	Upload(c bCtx.Ctx, blob []byte) (*UploadResult, error)
	UploadJson(c bCtx.Ctx, value interface{}) (*UploadResult, error)
}

const (
	ipfsScheme     = "ipfs://"
	defaultGateway = "https://ipfs.io/ipfs/"
)

// GatewayUrl rewrites an ipfs:// uri to an HTTP gateway url. Plain http(s)
// uris pass through; a bare cid is assumed.
func GatewayUrl(uri string) string {
	if strings.HasPrefix(uri, ipfsScheme) {
		return defaultGateway + strings.TrimPrefix(uri, ipfsScheme)
	}
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return uri
	}
	return defaultGateway + uri
}
