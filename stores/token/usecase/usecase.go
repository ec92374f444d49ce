package usecase

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/base/metrics"
	"github.com/x-xyz/goclient/base/refresh"
	"github.com/x-xyz/goclient/domain"
	"github.com/x-xyz/goclient/domain/binding"
	"github.com/x-xyz/goclient/domain/marketplace"
	"github.com/x-xyz/goclient/domain/token"
	"github.com/x-xyz/goclient/domain/wallet"
	"github.com/x-xyz/goclient/service/cache"
	"github.com/x-xyz/goclient/service/cache/provider/primitive"
	"github.com/x-xyz/goclient/service/chain/contract"
	"github.com/x-xyz/goclient/service/storage"
)

const (
	uriConcurrency          = 10
	defaultMetadataCacheTtl = 5 * time.Minute
	defaultHttpTimeout      = 10 * time.Second
)

type TokenUseCaseCfg struct {
	Binding        binding.Provider
	Marketplace    marketplace.Usecase
	Wallet         wallet.Usecase
	Refresh        *refresh.Signal
	CollectionAddr domain.Address
	// HttpClient fetches metadata documents through the ipfs gateway. A
	// default with a timeout is installed when nil.
	HttpClient       *http.Client
	MetadataCacheTtl time.Duration
}

type impl struct {
	binding        binding.Provider
	marketplace    marketplace.Usecase
	wallet         wallet.Usecase
	refresh        *refresh.Signal
	collectionAddr domain.Address
	httpClient     *http.Client
	metadataCache  cache.Service
	metrics        metrics.Service
}

func New(cfg *TokenUseCaseCfg) token.Usecase {
	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHttpTimeout}
	}
	ttl := cfg.MetadataCacheTtl
	if ttl <= 0 {
		ttl = defaultMetadataCacheTtl
	}
	return &impl{
		binding:        cfg.Binding,
		marketplace:    cfg.Marketplace,
		wallet:         cfg.Wallet,
		refresh:        cfg.Refresh,
		collectionAddr: cfg.CollectionAddr,
		httpClient:     httpClient,
		metadataCache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   "metadata",
			Cache: primitive.NewPrimitive("metadata", 16),
		}),
		metrics: metrics.New("token"),
	}
}

func (im *impl) LoadOwnedTokens(c bCtx.Ctx, owner domain.Address) (*token.Inventory, error) {
	defer im.metrics.BumpTime("load_owned_tokens.latency").End()

	h, ok := im.binding.ReadBinding(c, im.collectionAddr)
	if !ok {
		return nil, domain.ErrContractUnavailable
	}
	col := contract.NewErc721(h)

	balance, err := col.BalanceOf(c, owner)
	if err != nil {
		c.WithFields(log.Fields{
			"owner": owner,
			"err":   err,
		}).Error("balanceOf failed")
		return nil, err
	}
	count := balance.Int64()

	// index reads stay sequential and ordered; the enumeration order is the
	// inventory order
	tokenIds := make([]domain.TokenId, 0, count)
	for i := int64(0); i < count; i++ {
		tokenId, err := col.TokenOfOwnerByIndex(c, owner, i)
		if err != nil {
			c.WithFields(log.Fields{
				"owner": owner,
				"index": i,
				"err":   err,
			}).Error("tokenOfOwnerByIndex failed")
			return nil, err
		}
		tokenIds = append(tokenIds, tokenId)
	}

	type indexed struct {
		pos    int
		record *token.NFTRecord
	}

	b := goroutines.NewBatch(uriConcurrency, goroutines.WithBatchSize(len(tokenIds)))
	defer b.Close()
	for i := 0; i < len(tokenIds); i++ {
		pos := i
		b.Queue(func() (interface{}, error) {
			uri, err := col.TokenURI(c, tokenIds[pos])
			if err != nil {
				return nil, xerrors.Errorf("tokenURI %s: %w", tokenIds[pos], err)
			}
			return &indexed{pos: pos, record: &token.NFTRecord{
				TokenId:  tokenIds[pos],
				Owner:    owner.ToLower(),
				TokenURI: uri,
			}}, nil
		})
	}
	b.QueueComplete()

	skipped := 0
	records := make([]*indexed, 0, len(tokenIds))
	for ret := range b.Results() {
		if ret.Error() != nil {
			// omit the token rather than failing the whole inventory
			c.WithField("err", ret.Error()).Warn("token uri fetch failed, skipping")
			skipped++
			continue
		}
		records = append(records, ret.Value().(*indexed))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].pos < records[j].pos })

	inventory := &token.Inventory{
		Records: make([]*token.NFTRecord, 0, len(records)),
		Skipped: skipped,
	}
	for _, r := range records {
		inventory.Records = append(inventory.Records, r.record)
	}
	return inventory, nil
}

func (im *impl) LoadPortfolio(c bCtx.Ctx, owner domain.Address) (*token.Portfolio, error) {
	inventory, err := im.LoadOwnedTokens(c, owner)
	if err != nil {
		return nil, err
	}

	tokenIds := make([]domain.TokenId, 0, len(inventory.Records))
	for _, r := range inventory.Records {
		tokenIds = append(tokenIds, r.TokenId)
	}

	listings, err := im.marketplace.HydrateListings(c, tokenIds)
	if err != nil {
		c.WithField("err", err).Error("marketplace.HydrateListings failed")
		return nil, err
	}

	portfolio := &token.Portfolio{
		Tokens:  make([]*token.OwnedToken, 0, len(inventory.Records)),
		Skipped: inventory.Skipped,
	}
	for _, r := range inventory.Records {
		portfolio.Tokens = append(portfolio.Tokens, &token.OwnedToken{
			NFTRecord: *r,
			Listing:   listings[r.TokenId],
		})
	}
	return portfolio, nil
}

func (im *impl) TokenMetadata(c bCtx.Ctx, tokenUri string) (*token.Metadata, error) {
	metadata := &token.Metadata{}
	err := im.metadataCache.GetByFunc(c, tokenUri, metadata, func() (interface{}, error) {
		return im.fetchMetadata(c, tokenUri)
	})
	if err != nil {
		return nil, err
	}
	return metadata, nil
}

func (im *impl) fetchMetadata(c bCtx.Ctx, tokenUri string) (*token.Metadata, error) {
	url := storage.GatewayUrl(tokenUri)
	req, err := http.NewRequestWithContext(c, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := im.httpClient.Do(req)
	if err != nil {
		c.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("metadata fetch failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, xerrors.Errorf("metadata fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	metadata := &token.Metadata{}
	if err := json.Unmarshal(body, metadata); err != nil {
		c.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("metadata decode failed")
		return nil, err
	}
	return metadata, nil
}

// Watch reloads the portfolio on every refresh tick or session change. The
// latest portfolio wins; a slow consumer only ever misses intermediate
// states, not the newest one.
func (im *impl) Watch(c bCtx.Ctx, owner domain.Address) (<-chan *token.Portfolio, func()) {
	out := make(chan *token.Portfolio, 1)
	ticks, unsubRefresh := im.refresh.Subscribe()

	sessionTicks := make(chan struct{}, 1)
	var unsubSession func()
	if im.wallet != nil {
		unsubSession = im.wallet.OnChange(func(wallet.Session) {
			select {
			case sessionTicks <- struct{}{}:
			default:
			}
		})
	}

	stop := make(chan struct{})
	go func() {
		defer close(out)
		for {
			select {
			case <-stop:
				return
			case <-c.Done():
				return
			case <-ticks:
			case <-sessionTicks:
			}

			portfolio, err := im.LoadPortfolio(c, owner)
			if err != nil {
				c.WithFields(log.Fields{
					"owner": owner,
					"err":   err,
				}).Warn("portfolio reload failed")
				continue
			}
			select {
			case out <- portfolio:
			default:
				// drop the stale buffered portfolio, then publish
				select {
				case <-out:
				default:
				}
				out <- portfolio
			}
		}
	}()

	var once sync.Once
	return out, func() {
		once.Do(func() {
			unsubRefresh()
			if unsubSession != nil {
				unsubSession()
			}
			close(stop)
		})
	}
}
