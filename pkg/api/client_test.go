package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/advcontrol/pkg/api"
	"tableflip.dev/advcontrol/pkg/api/apitest"
	"tableflip.dev/advcontrol/pkg/resource"
)

func signedIn(t *testing.T) (*api.Client, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(t)
	id := srv.AddUser("ana@example.test", "secret", "Ana")
	return api.New(srv.URL()).WithToken(srv.Token(id)), srv
}

func TestLoginReturnsSession(t *testing.T) {
	srv := apitest.NewServer(t)
	id := srv.AddUser("ana@example.test", "secret", "Ana")

	sess, err := api.New(srv.URL()).Login(context.Background(), "ana@example.test", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token == "" || sess.User.ID != id || sess.User.Name != "Ana" || sess.User.Email != "ana@example.test" {
		t.Fatalf("unexpected session %+v", sess)
	}
	exp, ok := api.TokenExpiry(sess.Token)
	if !ok {
		t.Fatalf("expected token expiry")
	}
	if d := time.Until(exp); d < 29*24*time.Hour || d > 31*24*time.Hour {
		t.Fatalf("expected 30 day token, expires in %s", d)
	}
}

func TestLoginRejectedUsesBackendDetail(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.AddUser("ana@example.test", "secret", "Ana")

	_, err := api.New(srv.URL()).Login(context.Background(), "ana@example.test", "wrong")
	var authErr *api.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T %v", err, err)
	}
	if authErr.Message != apitest.DetailBadLogin {
		t.Fatalf("expected backend detail verbatim, got %q", authErr.Message)
	}
	var fe *api.FetchError
	if !errors.As(err, &fe) || fe.Status != http.StatusUnauthorized {
		t.Fatalf("expected wrapped 401, got %v", err)
	}
	if want := "api: POST /auth/login: 401 Unauthorized: " + apitest.DetailBadLogin; fe.Error() != want {
		t.Fatalf("expected %q, got %q", want, fe.Error())
	}
}

func TestLoginFallbackMessage(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Fail("/auth/login", http.StatusInternalServerError, "")

	_, err := api.New(srv.URL()).Login(context.Background(), "a@b.c", "x")
	var authErr *api.AuthError
	if !errors.As(err, &authErr) || authErr.Message != api.MsgLoginFailed {
		t.Fatalf("expected fallback message, got %v", err)
	}
}

func TestLoginTransportFailure(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.Close()

	_, err := api.New(srv.URL()).Login(context.Background(), "a@b.c", "x")
	var authErr *api.AuthError
	if !errors.As(err, &authErr) || authErr.Message != api.MsgLoginFailed {
		t.Fatalf("expected fallback auth error, got %v", err)
	}
	var te *api.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	srv := apitest.NewServer(t)
	c := api.New(srv.URL())

	sess, err := c.Register(context.Background(), "bia@example.test", "pw", "Bia")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if sess.User.Name != "Bia" {
		t.Fatalf("unexpected user %+v", sess.User)
	}

	_, err = c.Register(context.Background(), "bia@example.test", "pw", "Bia")
	var authErr *api.AuthError
	if !errors.As(err, &authErr) || authErr.Message != apitest.DetailEmailTaken {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestFetchCollections(t *testing.T) {
	c, srv := signedIn(t)
	srv.SetRaw(resource.KindDeadlines, `[
		{"id":"1","tipo":"audiência","titulo":"Hearing","data":"2024-03-01T00:00:00","hora":"14:00"},
		"garbage",
		{"id":"2","tipo":"prazo","titulo":"File","data":"2024-03-02","hora":"09:00"}
	]`)
	srv.SetRaw(resource.KindFinancial, `[{"id":"f","tipo":"receber","valor":1500.5,"status":"pendente"}]`)

	ctx := context.Background()
	deadlines, err := c.Deadlines(ctx)
	if err != nil {
		t.Fatalf("deadlines: %v", err)
	}
	if len(deadlines) != 2 || deadlines[1].ID != "2" {
		t.Fatalf("expected malformed record skipped, got %+v", deadlines)
	}

	records, err := c.Financial(ctx)
	if err != nil {
		t.Fatalf("financial: %v", err)
	}
	if len(records) != 1 || !records[0].Amount.Equal(decimal.RequireFromString("1500.5")) {
		t.Fatalf("unexpected records %+v", records)
	}

	if _, err := c.Cases(ctx); err != nil {
		t.Fatalf("cases: %v", err)
	}
	if srv.Hits("/prazos") != 1 {
		t.Fatalf("expected one hit on /prazos, got %d", srv.Hits("/prazos"))
	}
}

func TestDashboard(t *testing.T) {
	c, srv := signedIn(t)
	srv.SetRaw(resource.KindDashboard, `{"prazos_hoje":2,"prazos_semana":5,"tarefas_pendentes":1,"processos_ativos":3,
		"contas_receber_mes":1200,"contas_atrasadas":300,
		"alertas":[{"tipo":"prazo","mensagem":"Hearing today","urgencia":"alta"},42]}`)

	stats, err := c.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.DeadlinesToday != 2 || stats.ActiveCases != 3 || len(stats.Alerts) != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if !stats.OverdueAmount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected overdue amount %s", stats.OverdueAmount)
	}
}

func TestFetchErrors(t *testing.T) {
	c, srv := signedIn(t)
	srv.Fail("/casos", http.StatusInternalServerError, "boom")

	_, err := c.Cases(context.Background())
	var fe *api.FetchError
	if !errors.As(err, &fe) || fe.Status != http.StatusInternalServerError || fe.Detail != "boom" {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if api.IsUnauthorized(err) {
		t.Fatalf("500 is not unauthorized")
	}
	if want := "api: GET /casos: 500 Internal Server Error: boom"; fe.Error() != want {
		t.Fatalf("expected %q, got %q", want, fe.Error())
	}
}

func TestBadTokenIsUnauthorized(t *testing.T) {
	srv := apitest.NewServer(t)
	_, err := api.New(srv.URL()).WithToken("not-a-jwt").Deadlines(context.Background())
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected 401, got %v", err)
	}
	var fe *api.FetchError
	if errors.As(err, &fe) && fe.Detail != apitest.DetailInvalidToken {
		t.Fatalf("unexpected detail %q", fe.Detail)
	}
}

func TestTransportError(t *testing.T) {
	c, srv := signedIn(t)
	srv.Close()

	_, err := c.Deadlines(context.Background())
	var te *api.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected transport error, got %T %v", err, err)
	}
}

func TestTimeout(t *testing.T) {
	srv := apitest.NewServer(t)
	id := srv.AddUser("ana@example.test", "secret", "Ana")
	release := srv.Hold(resource.KindCases)
	defer release()

	c := api.New(srv.URL(), api.WithTimeout(50*time.Millisecond)).WithToken(srv.Token(id))
	_, err := c.Cases(context.Background())
	var te *api.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected timeout as transport error, got %v", err)
	}
}

func TestTokenExpiryOpaque(t *testing.T) {
	if _, ok := api.TokenExpiry("opaque-token"); ok {
		t.Fatalf("opaque token should have no expiry")
	}
}
