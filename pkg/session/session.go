// Package session signs users in and out. Sessions live in the local store
// so a restart keeps the user logged in.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/studyed/pkg/store"
)

var (
	// ErrNotLoggedIn is returned by Logout when nobody is logged in.
	ErrNotLoggedIn = errors.New("session: not logged in")
	// ErrInvalidCredentials is returned when a known account's password does not match.
	ErrInvalidCredentials = errors.New("session: invalid email or password")
	// ErrAccountExists is returned by Signup for an email already signed up.
	ErrAccountExists = errors.New("session: an account with this email already exists")
)

// Guest is shown in place of a name when nobody is logged in.
const Guest = "Guest"

// User is the logged-in identity.
type User struct {
	ID    string
	Name  string
	Email string
	Since time.Time
}

type LoginForm struct {
	Email    string `form:"email" validate:"notblank,email"`
	Password string `form:"password" validate:"notblank"`
}

type SignupForm struct {
	Name     string `form:"name" validate:"notblank"`
	Email    string `form:"email" validate:"notblank,email"`
	Password string `form:"password" validate:"notblank,min=8"`
}

// Provider is the single source of truth for who is logged in.
type Provider struct {
	store store.Sessions
	now   func() time.Time
}

func New(s store.Sessions) *Provider {
	return &Provider{store: s, now: time.Now}
}

// Current returns the logged-in user, if any.
func (p *Provider) Current() (User, bool) {
	s, err := p.store.LoadSession()
	if err != nil {
		return User{}, false
	}
	return User{ID: s.ID, Name: s.Name, Email: s.Email, Since: s.LoggedInAt}, true
}

// DisplayName is the user's name, or Guest.
func (p *Provider) DisplayName() string {
	if u, ok := p.Current(); ok && u.Name != "" {
		return u.Name
	}
	return Guest
}

// Login signs in with f. Without a matching account the email doubles as the
// display name.
func (p *Provider) Login(f LoginForm) (User, error) {
	f.Email = strings.TrimSpace(f.Email)
	if err := check(f); err != nil {
		return User{}, err
	}

	name := f.Email
	acct, err := p.store.Account(f.Email)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(f.Password)) != nil {
			return User{}, ErrInvalidCredentials
		}
		name = acct.Name
	case !errors.Is(err, store.ErrNotFound):
		return User{}, fmt.Errorf("session: look up account: %w", err)
	}
	return p.start(name, f.Email)
}

// Signup stores a new account and logs it in.
func (p *Provider) Signup(f SignupForm) (User, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	if err := check(f); err != nil {
		return User{}, err
	}

	if _, err := p.store.Account(f.Email); err == nil {
		return User{}, ErrAccountExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return User{}, fmt.Errorf("session: look up account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("session: hash password: %w", err)
	}
	if err := p.store.SaveAccount(store.Account{
		Name:         f.Name,
		Email:        f.Email,
		PasswordHash: hash,
		CreatedAt:    p.now(),
	}); err != nil {
		return User{}, fmt.Errorf("session: save account: %w", err)
	}
	return p.start(f.Name, f.Email)
}

// Logout ends the current session.
func (p *Provider) Logout() error {
	err := p.store.ClearSession()
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotLoggedIn
	}
	return err
}

func (p *Provider) start(name, email string) (User, error) {
	s := store.Session{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		LoggedInAt: p.now(),
	}
	if err := p.store.SaveSession(s); err != nil {
		return User{}, fmt.Errorf("session: save: %w", err)
	}
	return User{ID: s.ID, Name: s.Name, Email: s.Email, Since: s.LoggedInAt}, nil
}
