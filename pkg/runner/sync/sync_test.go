package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"tableflip.dev/advcontrol/pkg/api"
	"tableflip.dev/advcontrol/pkg/api/apitest"
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
)

func TestSyncReportsEachCollection(t *testing.T) {
	srv := apitest.NewServer(t)
	id := srv.AddUser("ana@example.test", "secret", "Ana")
	srv.SetPayload(resource.KindCases, []resource.Case{{ID: "1"}, {ID: "2"}})
	srv.SetPayload(resource.KindDeadlines, []resource.Deadline{{ID: "1", Date: "2024-03-01"}})
	srv.Fail("/financeiro", http.StatusBadGateway, "")

	set := screens.NewSet(api.New(srv.URL()).WithToken(srv.Token(id)), nil)
	var out bytes.Buffer
	err := (&Sync{Screens: set, JSON: true, Out: &out}).Do(context.Background())
	if !errors.Is(err, ErrPartial) {
		t.Fatalf("expected ErrPartial, got %v", err)
	}

	var got []outcome
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	byKind := map[resource.Kind]outcome{}
	for _, o := range got {
		byKind[o.Kind] = o
	}
	if len(byKind) != 4 {
		t.Fatalf("expected four outcomes, got %+v", got)
	}
	if o := byKind[resource.KindCases]; !o.OK || o.Records != 2 {
		t.Fatalf("unexpected cases outcome %+v", o)
	}
	if o := byKind[resource.KindFinancial]; o.OK || o.Notice != "could not load financial records" {
		t.Fatalf("unexpected financial outcome %+v", o)
	}
	if o := byKind[resource.KindDeadlines]; !o.OK || o.Records != 1 {
		t.Fatalf("unexpected deadlines outcome %+v", o)
	}
}
