package session

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider drives notifications by hand and records unsubscribes.
type fakeProvider struct {
	listener     func(*User)
	unsubscribed bool

	refreshUser *User
	refreshErr  error
	signOutErr  error
}

func (f *fakeProvider) Subscribe(onChange func(*User)) func() {
	f.listener = onChange
	return func() { f.unsubscribed = true }
}

func (f *fakeProvider) Refresh(ctx context.Context) (*User, error) {
	return f.refreshUser, f.refreshErr
}

func (f *fakeProvider) SignOut(ctx context.Context) error {
	return f.signOutErr
}

func (f *fakeProvider) emit(u *User) {
	if f.listener != nil {
		f.listener(u)
	}
}

func TestControllerStartsUnknown(t *testing.T) {
	c := NewController(&fakeProvider{})
	if state, _ := c.Current(); state != Unknown {
		t.Errorf("initial state = %v, want Unknown", state)
	}
}

func TestControllerResolved(t *testing.T) {
	p := &fakeProvider{}
	c := NewController(p)
	c.Start(context.Background())

	if c.Resolved() {
		t.Errorf("Resolved before first provider callback")
	}
	p.emit(nil)
	if !c.Resolved() {
		t.Errorf("not Resolved after provider callback")
	}
}

func TestControllerResolvesAnonymous(t *testing.T) {
	p := &fakeProvider{}
	c := NewController(p)
	c.Start(context.Background())

	p.emit(nil)

	if state, user := c.Current(); state != Anonymous || user != nil {
		t.Errorf("state = %v user = %v, want Anonymous nil", state, user)
	}
}

func TestControllerRefreshesOnNotification(t *testing.T) {
	p := &fakeProvider{refreshUser: &User{ID: "u1", DisplayName: "Fresh Name"}}
	c := NewController(p)
	c.Start(context.Background())

	p.emit(&User{ID: "u1", DisplayName: "Stale Name"})

	state, user := c.Current()
	if state != Authenticated {
		t.Fatalf("state = %v, want Authenticated", state)
	}
	if user.DisplayName != "Fresh Name" {
		t.Errorf("DisplayName = %q, want refreshed profile", user.DisplayName)
	}
}

func TestControllerPublishesStaleUserWhenRefreshFails(t *testing.T) {
	p := &fakeProvider{refreshErr: errors.New("profile endpoint down")}
	c := NewController(p)
	c.Start(context.Background())

	p.emit(&User{ID: "u1", DisplayName: "Last Known"})

	state, user := c.Current()
	if state != Authenticated {
		t.Fatalf("state = %v, want Authenticated despite refresh failure", state)
	}
	if user.DisplayName != "Last Known" {
		t.Errorf("DisplayName = %q, want last-known object", user.DisplayName)
	}
}

func TestControllerStopDeliversNothing(t *testing.T) {
	p := &fakeProvider{}
	c := NewController(p)
	c.Start(context.Background())
	p.emit(&User{ID: "u1"})

	c.Stop()
	if !p.unsubscribed {
		t.Fatalf("Stop did not unsubscribe")
	}

	stateBefore, userBefore := c.Current()
	p.emit(nil) // event after unsubscribe must not mutate state
	stateAfter, userAfter := c.Current()

	if stateBefore != stateAfter || (userBefore == nil) != (userAfter == nil) {
		t.Errorf("state mutated after Stop: %v/%v -> %v/%v", stateBefore, userBefore, stateAfter, userAfter)
	}
}

func TestControllerSignOut(t *testing.T) {
	p := &fakeProvider{}
	c := NewController(p)
	navigated := false
	c.OnSignOut(func() { navigated = true })
	c.Start(context.Background())
	p.emit(&User{ID: "u1"})

	if err := c.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if state, user := c.Current(); state != Anonymous || user != nil {
		t.Errorf("after sign-out state = %v user = %v, want Anonymous nil", state, user)
	}
	if !navigated {
		t.Errorf("sign-out hook not invoked")
	}
}

func TestControllerSignOutFailureLeavesSession(t *testing.T) {
	p := &fakeProvider{signOutErr: errors.New("provider rejected")}
	c := NewController(p)
	c.Start(context.Background())
	p.emit(&User{ID: "u1", DisplayName: "Still Here"})

	err := c.SignOut(context.Background())
	if err == nil {
		t.Fatalf("SignOut returned nil, want provider error")
	}

	state, user := c.Current()
	if state != Authenticated || user == nil || user.DisplayName != "Still Here" {
		t.Errorf("failed sign-out changed session: state = %v user = %v", state, user)
	}
}

func TestStateString(t *testing.T) {
	if Unknown.String() != "unknown" || Authenticated.String() != "authenticated" || Anonymous.String() != "anonymous" {
		t.Errorf("State.String mismatch: %v %v %v", Unknown, Authenticated, Anonymous)
	}
}
