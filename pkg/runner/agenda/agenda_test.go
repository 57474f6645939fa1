package agenda

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tableflip.dev/advcontrol/pkg/api"
	"tableflip.dev/advcontrol/pkg/api/apitest"
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
)

func fixedNow() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }

func newSet(t *testing.T) (*screens.Set, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(t)
	id := srv.AddUser("ana@example.test", "secret", "Ana")
	return screens.NewSet(api.New(srv.URL()).WithToken(srv.Token(id)), nil), srv
}

func TestAgendaDay(t *testing.T) {
	set, srv := newSet(t)
	srv.SetPayload(resource.KindDeadlines, []resource.Deadline{
		{ID: "1", Title: "Hearing", Type: resource.DeadlineTypeHearing, Date: "2024-03-01", Time: "14:00"},
		{ID: "2", Title: "Call client", Date: "2024-03-01", Time: "09:30"},
		{ID: "3", Title: "Filing", Date: "2024-03-02", Time: "10:00"},
	})

	var out bytes.Buffer
	a := &Agenda{Screens: set, Out: &out, Now: fixedNow}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("agenda: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "March 2024") {
		t.Fatalf("expected calendar header, got:\n%s", got)
	}
	first, second := strings.Index(got, "Call client"), strings.Index(got, "Hearing\n")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected 09:30 before 14:00, got:\n%s", got)
	}
	if strings.Contains(got, "Filing") {
		t.Fatalf("other days must not be listed:\n%s", got)
	}
}

func TestAgendaNextJSON(t *testing.T) {
	set, srv := newSet(t)
	srv.SetPayload(resource.KindDeadlines, []resource.Deadline{
		{ID: "1", Date: "2024-03-01", Time: "14:00"},
		{ID: "2", Date: "2024-03-05", Time: "09:00"},
		{ID: "3", Date: "2024-03-20", Time: "09:00"},
	})

	var out bytes.Buffer
	a := &Agenda{Screens: set, Next: "1w", JSON: true, Out: &out, Now: fixedNow}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("agenda: %v", err)
	}
	var got upcomingReport
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if got.From != "2024-03-01" || got.Window != "1w" || len(got.Deadlines) != 2 {
		t.Fatalf("unexpected report %+v", got)
	}
}

func TestAgendaUnavailable(t *testing.T) {
	set, srv := newSet(t)
	srv.Fail("/prazos", 500, "")

	a := &Agenda{Screens: set, Out: &bytes.Buffer{}, Now: fixedNow}
	err := a.Do(context.Background())
	if err == nil || err.Error() != "could not load deadlines" {
		t.Fatalf("expected could not load deadlines, got %v", err)
	}
}

func TestAgendaBadInput(t *testing.T) {
	set, _ := newSet(t)
	if err := (&Agenda{Screens: set, On: "someday", Out: &bytes.Buffer{}}).Do(context.Background()); err == nil {
		t.Fatalf("expected invalid date")
	}
	if err := (&Agenda{Screens: set, Next: "soon", Out: &bytes.Buffer{}}).Do(context.Background()); err == nil {
		t.Fatalf("expected invalid window")
	}
}
