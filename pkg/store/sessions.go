package store

import (
	"strings"
	"time"
)

const (
	sessionBucket = "session"
	accountBucket = "accounts"
	currentKey    = "current"
)

// Session is the logged-in user, kept across restarts.
type Session struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// Account is a signed-up user.
type Account struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Sessions persists the current session and known accounts.
type Sessions interface {
	LoadSession() (Session, error)
	SaveSession(s Session) error
	ClearSession() error
	SaveAccount(a Account) error
	Account(email string) (Account, error)
}

func (p *persistence) LoadSession() (Session, error) {
	var s Session
	if err := p.get(key(sessionBucket, currentKey), &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (p *persistence) SaveSession(s Session) error {
	return p.put(key(sessionBucket, currentKey), s)
}

func (p *persistence) ClearSession() error {
	return p.erase(key(sessionBucket, currentKey))
}

func (p *persistence) SaveAccount(a Account) error {
	a.Email = normalizeEmail(a.Email)
	return p.put(key(accountBucket, a.Email), a)
}

func (p *persistence) Account(email string) (Account, error) {
	var a Account
	if err := p.get(key(accountBucket, normalizeEmail(email)), &a); err != nil {
		return Account{}, err
	}
	return a, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
