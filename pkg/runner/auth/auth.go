// Package auth provides the runners for login, register, logout and whoami.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/advcontrol/pkg/api"
	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/printers"
	"tableflip.dev/advcontrol/pkg/session"
)

// Prompter asks for a value on the terminal.
type Prompter func(label string, mask bool) (string, error)

// TerminalPrompt reads input with promptui, masking secrets.
func TerminalPrompt(label string, mask bool) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("required")
			}
			return nil
		},
	}
	if mask {
		p.Mask = '*'
	}
	return p.Run()
}

// Login signs in with email and password.
type Login struct {
	App      *app.App
	Email    string
	Password string
	Prompt   Prompter
	JSON     bool
	Out      io.Writer
}

func (l *Login) Do(ctx context.Context) error {
	email, password, err := credentials(l.Prompt, l.Email, l.Password)
	if err != nil {
		return err
	}
	sess, err := l.App.Auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return report(printers.New(l.Out), l.JSON, "Signed in", sess)
}

// Register creates an account and signs in.
type Register struct {
	App      *app.App
	Name     string
	Email    string
	Password string
	Prompt   Prompter
	JSON     bool
	Out      io.Writer
}

func (r *Register) Do(ctx context.Context) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		if r.Prompt == nil {
			return errors.New("name is required")
		}
		var err error
		if name, err = r.Prompt("Name", false); err != nil {
			return err
		}
	}
	email, password, err := credentials(r.Prompt, r.Email, r.Password)
	if err != nil {
		return err
	}
	sess, err := r.App.Auth.SignUp(ctx, email, password, name)
	if err != nil {
		return err
	}
	return report(printers.New(r.Out), r.JSON, "Account created", sess)
}

func credentials(prompt Prompter, email, password string) (string, string, error) {
	var err error
	if strings.TrimSpace(email) == "" {
		if prompt == nil {
			return "", "", errors.New("email is required")
		}
		if email, err = prompt("Email", false); err != nil {
			return "", "", err
		}
	}
	if password == "" {
		if prompt == nil {
			return "", "", errors.New("password is required")
		}
		if password, err = prompt("Password", true); err != nil {
			return "", "", err
		}
	}
	return strings.TrimSpace(email), password, nil
}

// Logout forgets the stored session and cached data.
type Logout struct {
	App  *app.App
	JSON bool
	Out  io.Writer
}

func (l *Logout) Do(ctx context.Context) error {
	if err := l.App.SignOut(ctx); err != nil {
		return err
	}
	pp := printers.New(l.Out)
	if l.JSON {
		return pp.JSON(map[string]bool{"signedOut": true})
	}
	_, err := fmt.Fprintln(pp.Out, "Signed out.")
	return err
}

// WhoAmI shows the stored session.
type WhoAmI struct {
	App  *app.App
	JSON bool
	Out  io.Writer
}

func (w *WhoAmI) Do(_ context.Context) error {
	sess, err := w.App.Auth.Require()
	if err != nil {
		return err
	}
	return report(printers.New(w.Out), w.JSON, "Signed in", sess)
}

type sessionReport struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

func report(pp *printers.PrettyPrint, asJSON bool, title string, sess *session.Session) error {
	r := sessionReport{ID: sess.User.ID, Email: sess.User.Email, Name: sess.User.Name}
	exp, known := api.TokenExpiry(sess.Token)
	if known {
		r.ExpiresAt = exp.UTC().Format(time.RFC3339)
	}
	if asJSON {
		return pp.JSON(r)
	}
	pp.Title(title)
	_, _ = fmt.Fprintf(pp.Out, "%s <%s>\n", r.Name, r.Email)
	if known {
		_, _ = fmt.Fprintf(pp.Out, "token expires %s\n", exp.Local().Format("2006-01-02 15:04"))
	} else {
		_, _ = fmt.Fprintln(pp.Out, "token expiry unknown")
	}
	return nil
}
