package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/advcontrol/pkg/api"
	"tableflip.dev/advcontrol/pkg/api/apitest"
	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/config"
	"tableflip.dev/advcontrol/pkg/session"
)

func openApp(t *testing.T, srv *apitest.Server) *app.App {
	t.Helper()
	a, err := app.Open(context.Background(), &config.Config{
		Path:           t.TempDir(),
		APIURL:         srv.URL(),
		APITimeout:     5 * time.Second,
		SessionBackend: config.BackendDisk,
		LogLevel:       "error",
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestLoginPromptsForMissingValues(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser("ana@example.test", "secret", "Ana")
	a := openApp(t, srv)

	var asked []string
	prompt := func(label string, mask bool) (string, error) {
		asked = append(asked, label)
		if label == "Password" && !mask {
			t.Fatalf("password prompt must be masked")
		}
		return "secret", nil
	}

	var out bytes.Buffer
	l := &Login{App: a, Email: "ana@example.test", Prompt: prompt, Out: &out}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("login: %v", err)
	}
	if len(asked) != 1 || asked[0] != "Password" {
		t.Fatalf("expected only a password prompt, got %v", asked)
	}
	if !strings.Contains(out.String(), "Ana <ana@example.test>") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestLoginRejected(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser("ana@example.test", "secret", "Ana")
	a := openApp(t, srv)

	err := (&Login{App: a, Email: "ana@example.test", Password: "nope", Out: &bytes.Buffer{}}).Do(context.Background())
	var authErr *api.AuthError
	if !errors.As(err, &authErr) || authErr.Message != apitest.DetailBadLogin {
		t.Fatalf("expected backend detail, got %v", err)
	}
}

func TestMissingCredentialsWithoutPrompt(t *testing.T) {
	srv := apitest.NewServer(t)
	a := openApp(t, srv)
	if err := (&Login{App: a, Out: &bytes.Buffer{}}).Do(context.Background()); err == nil {
		t.Fatalf("expected missing email error")
	}
}

func TestRegisterWhoAmILogout(t *testing.T) {
	ctx := context.Background()
	srv := apitest.NewServer(t)
	a := openApp(t, srv)

	r := &Register{App: a, Name: "Bia", Email: "bia@example.test", Password: "pw", Out: &bytes.Buffer{}}
	if err := r.Do(ctx); err != nil {
		t.Fatalf("register: %v", err)
	}

	var out bytes.Buffer
	if err := (&WhoAmI{App: a, JSON: true, Out: &out}).Do(ctx); err != nil {
		t.Fatalf("whoami: %v", err)
	}
	var got sessionReport
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if got.Email != "bia@example.test" || got.Name != "Bia" || got.ExpiresAt == "" {
		t.Fatalf("unexpected whoami %+v", got)
	}

	if err := (&Logout{App: a, Out: &bytes.Buffer{}}).Do(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := (&WhoAmI{App: a, Out: &bytes.Buffer{}}).Do(ctx); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}
}
