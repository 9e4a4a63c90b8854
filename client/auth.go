package client

import (
	"context"
	"net/http"
	"sync"

	"homenest/models"
	"homenest/session"
)

// AuthProvider adapts the HomeNest auth endpoints to the session.Provider
// interface: sign-in and sign-out fan out to subscribers the way a hosted
// identity service pushes session-change events.
type AuthProvider struct {
	client *Client

	mu        sync.Mutex
	current   *session.User
	listeners map[int]func(*session.User)
	nextID    int
}

func NewAuthProvider(c *Client) *AuthProvider {
	return &AuthProvider{
		client:    c,
		listeners: map[int]func(*session.User){},
	}
}

// Subscribe registers a session-change listener. The current session (nil
// when anonymous) is delivered immediately, then on every change until the
// returned unsubscribe function runs.
func (p *AuthProvider) Subscribe(onChange func(*session.User)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = onChange
	current := p.current
	p.mu.Unlock()

	onChange(current)

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

// SignIn authenticates against the service, installs the bearer token on
// the underlying client and notifies subscribers.
func (p *AuthProvider) SignIn(ctx context.Context, email, password string) error {
	var resp models.LoginResponse
	err := p.client.do(ctx, http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return err
	}

	p.client.SetToken(resp.Token)
	p.publish(normalizeUser(resp.User))
	return nil
}

// SignUp registers a new account and signs it in.
func (p *AuthProvider) SignUp(ctx context.Context, req models.RegisterRequest) error {
	var resp models.LoginResponse
	if err := p.client.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return err
	}

	p.client.SetToken(resp.Token)
	p.publish(normalizeUser(resp.User))
	return nil
}

// Refresh re-reads the signed-in account's profile.
func (p *AuthProvider) Refresh(ctx context.Context) (*session.User, error) {
	var user models.User
	if err := p.client.do(ctx, http.MethodGet, "/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return normalizeUser(user), nil
}

// SignOut drops the local session and notifies subscribers. The service
// keeps no server-side session state beyond token expiry, so this cannot
// fail once the token is cleared.
func (p *AuthProvider) SignOut(ctx context.Context) error {
	p.client.SetToken("")
	p.publish(nil)
	return nil
}

func (p *AuthProvider) publish(u *session.User) {
	p.mu.Lock()
	p.current = u
	listeners := make([]func(*session.User), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(u)
	}
}

func normalizeUser(u models.User) *session.User {
	return &session.User{
		ID:          u.ID.Hex(),
		DisplayName: u.Name,
		Email:       u.Email,
		PhotoURL:    u.PhotoURL,
		Verified:    u.IsActive,
	}
}
