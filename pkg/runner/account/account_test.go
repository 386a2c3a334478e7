package account

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/studyed/pkg/session"
	"tableflip.dev/studyed/pkg/store"
)

type testConfig struct{ path string }

func (c testConfig) BasePath() string    { return c.path }
func (c testConfig) ContentPath() string { return "" }
func (c testConfig) QuizPath() string    { return "" }
func (c testConfig) NotesPath() string   { return "" }
func (c testConfig) LogPath() string     { return "" }
func (c testConfig) LogLevel() string    { return "" }

func TestAccountVerbs(t *testing.T) {
	color.NoColor = true
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	provider := session.New(p)
	ctx := context.Background()
	var buf bytes.Buffer

	who := &Whoami{Provider: provider, Out: &buf}
	if err := who.Do(ctx); err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if strings.TrimSpace(buf.String()) != session.Guest {
		t.Fatalf("expected guest, got %q", buf.String())
	}

	buf.Reset()
	signup := &Signup{Provider: provider, Out: &buf, Form: session.SignupForm{Name: "Ada", Email: "ada@example.com", Password: "analytical"}}
	if err := signup.Do(ctx); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if !strings.Contains(buf.String(), "Welcome, Ada!") {
		t.Fatalf("unexpected signup output %q", buf.String())
	}

	buf.Reset()
	if err := who.Do(ctx); err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Ada since ") {
		t.Fatalf("unexpected whoami output %q", buf.String())
	}

	logout := &Logout{Provider: provider, Out: &buf}
	if err := logout.Do(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := logout.Do(ctx); !errors.Is(err, session.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}

	login := &Login{Provider: provider, Out: &buf, Form: session.LoginForm{Email: "ada@example.com", Password: "wrong"}}
	if err := login.Do(ctx); !errors.Is(err, session.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
