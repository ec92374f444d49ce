package storage

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/goclient/base/ctx"
)

func Test_pinataImpl_Upload(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	var (
		gotPath     string
		gotApiKey   string
		gotFilename string
		gotBody     []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotApiKey = r.Header.Get("pinata_api_key")
		f, fh, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotFilename = fh.Filename
		gotBody, _ = io.ReadAll(f)
		w.Write([]byte(`{"IpfsHash":"QmTestHash"}`))
	}))
	defer srv.Close()

	im := &pinataImpl{srv.URL, "key", "secret"}

	// %PNG magic so mimetype picks the extension
	blob := []byte("\x89PNG\r\n\x1a\nfakeimagedata")
	res, err := im.Upload(ctx, blob)
	req.NoError(err)
	req.Equal("QmTestHash", res.Cid)
	req.Equal("ipfs://QmTestHash", res.Uri)
	req.Equal(pinataPinPath, gotPath)
	req.Equal("key", gotApiKey)
	req.Equal("file.png", gotFilename)
	req.Equal(blob, gotBody)
}

func Test_pinataImpl_UploadJson(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	var gotPayload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"IpfsHash":"QmJsonHash"}`))
	}))
	defer srv.Close()

	im := &pinataImpl{srv.URL, "key", "secret"}

	res, err := im.UploadJson(ctx, map[string]string{"name": "piece"})
	req.NoError(err)
	req.Equal("ipfs://QmJsonHash", res.Uri)
	req.Equal(map[string]interface{}{
		"pinataContent": map[string]interface{}{"name": "piece"},
	}, gotPayload)
}

func Test_pinataImpl_UploadFailure(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	im := &pinataImpl{srv.URL, "bad", "bad"}

	_, err := im.Upload(ctx, []byte("blob"))
	req.ErrorIs(err, ErrRequestFailed)
}

func TestGatewayUrl(t *testing.T) {
	req := require.New(t)
	req.Equal("https://ipfs.io/ipfs/QmX", GatewayUrl("ipfs://QmX"))
	req.Equal("https://example.com/meta.json", GatewayUrl("https://example.com/meta.json"))
	req.Equal("https://ipfs.io/ipfs/QmBare", GatewayUrl("QmBare"))
}
