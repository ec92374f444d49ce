package wallet

import (
	bCtx "github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/domain"
)

// Event is a wallet-driven notification kind. Only the two events the
// session manager consumes are modeled; anything else a capability emits
// is unsupported.
type Event string

const (
	EventAccountsChanged Event = "accountsChanged"
	EventChainChanged    Event = "chainChanged"
)

// EventHandler receives the raw event payload: []string account lists for
// EventAccountsChanged, the hex chain id string for EventChainChanged.
type EventHandler func(payload interface{})

// Provider is the minimal injected wallet capability: a request call and an
// event-subscription surface. Construction fails fast when nothing is
// injected; callers never probe beyond this interface.
type Provider interface {
	Request(c bCtx.Ctx, result interface{}, method string, params ...interface{}) error
	On(event Event, handler EventHandler)
	RemoveListener(event Event)
	Close()
}

// Session is the process-wide connection identity. Exactly one exists per
// running client, owned by the session manager; everything else reads
// snapshots and must treat them as possibly stale.
type Session struct {
	Address    *domain.Address `json:"address"`
	Connecting bool            `json:"connecting"`
}

func (s Session) Connected() bool {
	return s.Address != nil
}

// ObserverFunc receives a session snapshot after every mutation.
type ObserverFunc func(Session)

type Usecase interface {
	// Connect requests account access from the wallet. Fails with
	// domain.ErrWalletUnavailable when no capability is injected and
	// domain.ErrUserRejected when the wallet denies the prompt. Concurrent
	// calls are not deduplicated; they race on the wallet's own mutual
	// exclusion.
	Connect(c bCtx.Ctx) (domain.Address, error)
	// Disconnect clears the session unconditionally. Idempotent.
	Disconnect(c bCtx.Ctx)
	// CheckExistingAuthorization queries already-authorized accounts without
	// prompting. Silently no-ops when no capability is injected. Run once at
	// startup.
	CheckExistingAuthorization(c bCtx.Ctx)
	// Session returns a snapshot of the current session.
	Session() Session
	// OnChange registers a session observer. The returned func releases it.
	OnChange(fn ObserverFunc) func()
	// Close releases the wallet event subscriptions.
	Close()
}
