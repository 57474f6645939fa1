package key

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/advcontrol/pkg/views"
)

func TestKeyListsEveryGroup(t *testing.T) {
	var out bytes.Buffer
	if err := (&Key{Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("key: %v", err)
	}
	for _, g := range views.Legend() {
		if !strings.Contains(out.String(), g.Name) {
			t.Fatalf("missing %q in:\n%s", g.Name, out.String())
		}
	}
	if !strings.Contains(out.String(), "[In progress]") || !strings.Contains(out.String(), "em andamento") {
		t.Fatalf("expected plain badge and code:\n%s", out.String())
	}
}

func TestKeyJSON(t *testing.T) {
	var out bytes.Buffer
	if err := (&Key{JSON: true, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("key: %v", err)
	}
	var groups []views.LegendGroup
	if err := json.Unmarshal(out.Bytes(), &groups); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(groups) != 6 || groups[0].Entries[0].Code != "novo" || groups[0].Entries[0].Label != "New" {
		t.Fatalf("unexpected legend %+v", groups)
	}
}
