// Package account runs the login, signup, logout and whoami verbs.
package account

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyed/pkg/session"
)

type Login struct {
	Provider *session.Provider
	Form     session.LoginForm
	Out      io.Writer
}

func (n *Login) Do(_ context.Context) error {
	if n.Provider == nil {
		return errors.New("can not log in, no store")
	}
	u, err := n.Provider.Login(n.Form)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(writer(n.Out), "Logged in as %s.\n", color.New(color.Bold).Sprint(u.Name))
	return nil
}

type Signup struct {
	Provider *session.Provider
	Form     session.SignupForm
	Out      io.Writer
}

func (n *Signup) Do(_ context.Context) error {
	if n.Provider == nil {
		return errors.New("can not sign up, no store")
	}
	u, err := n.Provider.Signup(n.Form)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(writer(n.Out), "Welcome, %s! You are logged in.\n", color.New(color.Bold).Sprint(u.Name))
	return nil
}

type Logout struct {
	Provider *session.Provider
	Out      io.Writer
}

func (n *Logout) Do(_ context.Context) error {
	if n.Provider == nil {
		return errors.New("can not log out, no store")
	}
	if err := n.Provider.Logout(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(writer(n.Out), "Logged out.")
	return nil
}

type Whoami struct {
	Provider *session.Provider
	Out      io.Writer
}

func (n *Whoami) Do(_ context.Context) error {
	if n.Provider == nil {
		return errors.New("can not check session, no store")
	}
	u, ok := n.Provider.Current()
	if !ok {
		_, _ = fmt.Fprintln(writer(n.Out), session.Guest)
		return nil
	}
	faint := color.New(color.Faint)
	_, _ = fmt.Fprintf(writer(n.Out), "%s %s\n", u.Name, faint.Sprintf("since %s", u.Since.Format("2006-01-02 15:04")))
	return nil
}

func writer(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
