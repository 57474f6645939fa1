// Package snake lets people pick a subcommand from a menu instead of typing
// it.
package snake

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// ErrNoCommands is returned when cmd has nothing to pick from.
var ErrNoCommands = errors.New("no commands to choose from")

// Choices lists the runnable subcommands of cmd in menu order.
func Choices(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.Hidden || !sub.IsAvailableCommand() || sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		out = append(out, sub)
	}
	return out
}

// Matches is the menu search: a case and space insensitive substring match on
// the command name and short description.
func Matches(sub *cobra.Command, input string) bool {
	norm := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), " ", "")
	}
	input = norm(input)
	return strings.Contains(norm(sub.Name()), input) || strings.Contains(norm(sub.Short), input)
}

// PickCommand shows the subcommands of cmd and returns the chosen one.
func PickCommand(cmd *cobra.Command) (*cobra.Command, error) {
	subcommands := Choices(cmd)
	if len(subcommands) == 0 {
		return nil, ErrNoCommands
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Name | bold }}",
		Details: `
--------- Details ----------
{{ .Long }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Commands",
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher: func(input string, index int) bool {
			return Matches(subcommands[index], input)
		},
		Stdin:  io.NopCloser(cmd.InOrStdin()),
		Stdout: nopCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return subcommands[i], nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
