package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmynk/gastrip/internal/assistant"
	"github.com/mmynk/gastrip/internal/calculator"
	"github.com/mmynk/gastrip/internal/config"
	"github.com/mmynk/gastrip/internal/session"
	"github.com/mmynk/gastrip/internal/storage/sqlite"
	"github.com/mmynk/gastrip/pkg/logging"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gastrip",
		Short:         "Fuel cost calculator for road trips",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newHelperCmd())
	rootCmd.AddCommand(newInsightsCmd())
	rootCmd.AddCommand(newShareCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	return config.LoadOrCreate(path)
}

// app is everything a command needs to operate on the saved trip.
type app struct {
	cfg     config.Config
	store   *sqlite.SQLiteStore
	session *session.Session
}

func (a *app) Close() error {
	return a.store.Close()
}

func openApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.SetupFromConfig(cfg.Log.Level)

	store, err := sqlite.New(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	ctx := commandContext(cmd)

	gen, err := assistant.NewGenerator(ctx, assistant.GeminiConfig{
		APIKey:  cfg.APIKey(),
		Model:   cfg.Assistant.Model,
		BaseURL: cfg.Assistant.BaseURL,
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("create assistant: %w", err)
	}

	return &app{
		cfg:     cfg,
		store:   store,
		session: session.New(ctx, store, assistant.New(gen)),
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printState(w io.Writer, state session.State) {
	fmt.Fprintln(w, "trip")
	fmt.Fprintf(w, "  distance:    %s km\n", calculator.FormatNumber(state.Inputs.Distance))
	fmt.Fprintf(w, "  consumption: %s L/100km\n", calculator.FormatNumber(state.Inputs.Consumption))
	fmt.Fprintf(w, "  price:       %s €/L\n", calculator.FormatNumber(state.Inputs.Price))
	fmt.Fprintln(w, "totals")
	fmt.Fprintf(w, "  fuel:        %s L\n", calculator.FormatMoney(state.Totals.TotalLiters))
	fmt.Fprintf(w, "  cost:        %s €\n", calculator.FormatMoney(state.Totals.TotalCost))
	fmt.Fprintf(w, "  per km:      %s €\n", calculator.FormatMoney(state.Totals.CostPerKm))
	fmt.Fprintf(w, "  co2:         %s kg\n", calculator.FormatMoney(state.Totals.CO2Kg))
	if state.Split.NumPeople > 1 {
		fmt.Fprintf(w, "  each pays:   %s € (%d people)\n", calculator.FormatMoney(state.Split.CostPerPerson), state.Split.NumPeople)
	}
	fmt.Fprintln(w, "theme:", state.Theme)
}
