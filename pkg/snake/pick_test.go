package snake

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestChoicesAndMatches(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	run := func(*cobra.Command, []string) error { return nil }
	root.AddCommand(
		&cobra.Command{Use: "agenda", Short: "Show the calendar", RunE: run},
		&cobra.Command{Use: "finance", Short: "Show totals", RunE: run},
		&cobra.Command{Use: "secret", Hidden: true, RunE: run},
	)

	choices := Choices(root)
	if len(choices) != 2 {
		t.Fatalf("expected two visible commands, got %d", len(choices))
	}
	if !Matches(choices[0], "CAL endar") {
		t.Fatalf("expected short description match")
	}
	if !Matches(choices[1], "fin") || Matches(choices[1], "calendar") {
		t.Fatalf("unexpected match result")
	}
}

func TestPickCommandWithoutChoices(t *testing.T) {
	if _, err := PickCommand(&cobra.Command{Use: "lonely"}); err != ErrNoCommands {
		t.Fatalf("expected ErrNoCommands, got %v", err)
	}
}
