package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tableflip.dev/advcontrol/pkg/session"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"nome,omitempty"`
}

// authResponse accepts both the flat {id,email,nome,token} body and the
// nested {token,user} form.
type authResponse struct {
	Token string        `json:"token"`
	ID    string        `json:"id"`
	Email string        `json:"email"`
	Name  string        `json:"nome"`
	User  *session.User `json:"user"`
}

func (r authResponse) session() (session.Session, bool) {
	if strings.TrimSpace(r.Token) == "" {
		return session.Session{}, false
	}
	if r.User != nil {
		return session.Session{Token: r.Token, User: *r.User}, true
	}
	if r.ID == "" {
		return session.Session{}, false
	}
	return session.Session{Token: r.Token, User: session.User{ID: r.ID, Email: r.Email, Name: r.Name}}, true
}

// Login exchanges credentials for a session. Failures are *AuthError.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	return c.authenticate(ctx, "/auth/login", credentials{Email: email, Password: password}, MsgLoginFailed)
}

// Register creates an account and signs it in. Failures are *AuthError.
func (c *Client) Register(ctx context.Context, email, password, name string) (session.Session, error) {
	return c.authenticate(ctx, "/auth/register", credentials{Email: email, Password: password, Name: name}, MsgRegisterFailed)
}

func (c *Client) authenticate(ctx context.Context, path string, body credentials, fallback string) (session.Session, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return session.Session{}, &AuthError{Message: fallback, Err: err}
	}
	status, data, err := c.do(req, path)
	if err != nil {
		return session.Session{}, &AuthError{Message: fallback, Err: err}
	}
	if status < 200 || status > 299 {
		detail := detailFrom(data)
		msg := detail
		if msg == "" {
			msg = fallback
		}
		return session.Session{}, &AuthError{Message: msg, Err: &FetchError{Method: http.MethodPost, Status: status, Path: path, Detail: detail}}
	}

	var resp authResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return session.Session{}, &AuthError{Message: fallback, Err: err}
	}
	sess, ok := resp.session()
	if !ok {
		return session.Session{}, &AuthError{Message: fallback, Err: errors.New("api: response carried no token or user")}
	}
	return sess, nil
}

// TokenExpiry reads the exp claim without verifying the signature. ok is false
// for opaque tokens or tokens without exp.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
