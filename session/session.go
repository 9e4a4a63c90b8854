// Package session bridges an external identity provider's asynchronous
// change notifications into a locally readable session state.
package session

import (
	"context"
	"sync"
)

// State is the resolved authentication state. Unknown holds only between
// Start and the provider's first callback; route guards must treat it as
// "still loading", never as Anonymous.
type State int

const (
	Unknown State = iota
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// User is the normalized projection of the provider's account object.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
	Verified    bool   `json:"verified"`
}

// Provider is the external identity service. Subscribe delivers the current
// account (nil when signed out) on every session change and returns an
// unsubscribe function. Refresh re-reads the latest profile fields for the
// signed-in account.
type Provider interface {
	Subscribe(onChange func(*User)) (unsubscribe func())
	Refresh(ctx context.Context) (*User, error)
	SignOut(ctx context.Context) error
}

// Controller tracks the provider's session and exposes it as a synchronous
// read. On each change notification carrying a user, it makes a best-effort
// Refresh call for up-to-date profile fields; if that fails it publishes the
// provider's last-known object rather than dropping the session.
type Controller struct {
	provider Provider

	mu          sync.Mutex
	state       State
	user        *User
	stopped     bool
	unsubscribe func()

	// onSignOut is invoked after a successful sign-out, once local state is
	// cleared. The app uses it to navigate to a public route.
	onSignOut func()
}

func NewController(provider Provider) *Controller {
	return &Controller{provider: provider, state: Unknown}
}

// OnSignOut registers the post-sign-out hook. Must be called before Start.
func (c *Controller) OnSignOut(fn func()) {
	c.onSignOut = fn
}

// Start subscribes to the provider. Until the first notification arrives the
// state reads as Unknown.
func (c *Controller) Start(ctx context.Context) {
	c.unsubscribe = c.provider.Subscribe(func(u *User) {
		c.handleChange(ctx, u)
	})
}

// Stop unsubscribes. No callback delivered after Stop mutates state.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopped = true
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// Current returns the resolved state and, when Authenticated, the user.
func (c *Controller) Current() (State, *User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return c.state, nil
	}
	u := *c.user
	return c.state, &u
}

// Resolved reports whether the provider has answered at least once. Route
// guards must not make access decisions until this is true: Unknown means
// "still loading", not "signed out".
func (c *Controller) Resolved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != Unknown
}

// SignOut asks the provider to end the session. On success the local user is
// cleared before returning; on failure local state is left untouched and the
// error is returned for the caller to surface.
func (c *Controller) SignOut(ctx context.Context) error {
	if err := c.provider.SignOut(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	c.state = Anonymous
	c.user = nil
	c.mu.Unlock()
	if c.onSignOut != nil {
		c.onSignOut()
	}
	return nil
}

func (c *Controller) handleChange(ctx context.Context, u *User) {
	if u != nil {
		if fresh, err := c.provider.Refresh(ctx); err == nil && fresh != nil {
			u = fresh
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	if u == nil {
		c.state = Anonymous
		c.user = nil
		return
	}
	c.state = Authenticated
	copied := *u
	c.user = &copied
}
