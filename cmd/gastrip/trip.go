package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/gastrip/internal/models"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved trip and its totals",
		Args:  cobra.NoArgs,
		RunE:  runShowCmd,
	}
}

func runShowCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	printState(cmd.OutOrStdout(), a.session.Snapshot())
	return nil
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <distance|consumption|price> <value>",
		Short: "Set one trip input",
		Long:  "Set one trip input. Commas are accepted as decimal separators; unparseable values become 0.",
		Args:  cobra.ExactArgs(2),
		RunE:  runSetCmd,
	}
}

func runSetCmd(cmd *cobra.Command, args []string) error {
	field, err := models.ParseField(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.session.Update(commandContext(cmd), field, args[1])
	printState(cmd.OutOrStdout(), a.session.Snapshot())
	return nil
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all trip inputs",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.session.Reset(commandContext(cmd))
	fmt.Fprintln(cmd.OutOrStdout(), "trip cleared")
	return nil
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the display theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE:      runThemeCmd,
	}
}

func runThemeCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := commandContext(cmd)
	theme := a.session.Theme()

	switch {
	case len(args) == 0:
	case args[0] == "toggle":
		theme = a.session.ToggleTheme(ctx)
	default:
		theme, err = models.ParseTheme(args[0])
		if err != nil {
			return err
		}
		a.session.SetTheme(ctx, theme)
	}

	fmt.Fprintln(cmd.OutOrStdout(), theme)
	return nil
}
