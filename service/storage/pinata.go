package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	bCtx "github.com/x-xyz/goclient/base/ctx"
)

const (
	pinataEndpoint    = "https://api.pinata.cloud"
	pinataPinPath     = "/pinning/pinFileToIPFS"
	pinataPinJsonPath = "/pinning/pinJSONToIPFS"
)

type pinataImpl struct {
	endpoint  string
	apiKey    string
	apiSecret string
}

func NewPinata(apiKey, apiSecret string) Service {
	return &pinataImpl{pinataEndpoint, apiKey, apiSecret}
}

func (im *pinataImpl) Upload(c bCtx.Ctx, blob []byte) (*UploadResult, error) {
	extension := strings.TrimPrefix(mimetype.Detect(blob).Extension(), ".")
	if extension == "" {
		extension = "bin"
	}

	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", "file."+extension); err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return nil, err
	} else if _, err := io.Copy(fw, bytes.NewReader(blob)); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return nil, err
	}
	w.Close()

	url := fmt.Sprintf("%s%s", im.endpoint, pinataPinPath)

	req, err := http.NewRequestWithContext(c, "POST", url, &b)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("pinata_api_key", im.apiKey)
	req.Header.Set("pinata_secret_api_key", im.apiSecret)

	return im.do(c, req)
}

func (im *pinataImpl) UploadJson(c bCtx.Ctx, value interface{}) (*UploadResult, error) {
	type payload struct {
		PinataContent interface{} `json:"pinataContent"`
	}

	body, err := json.Marshal(payload{PinataContent: value})
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}

	url := fmt.Sprintf("%s%s", im.endpoint, pinataPinJsonPath)

	req, err := http.NewRequestWithContext(c, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("pinata_api_key", im.apiKey)
	req.Header.Set("pinata_secret_api_key", im.apiSecret)

	return im.do(c, req)
}

func (im *pinataImpl) do(c bCtx.Ctx, req *http.Request) (*UploadResult, error) {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.WithField("err", err).Error("DefaultClient.Do failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithField("errorBody", string(errorBody)).Error("Request failed")
		return nil, ErrRequestFailed
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}
	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return nil, err
	}

	return &UploadResult{
		Cid: p.IpfsHash,
		Uri: ipfsScheme + p.IpfsHash,
	}, nil
}
