package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/gastrip/internal/calculator"
	"github.com/mmynk/gastrip/internal/models"
	"github.com/mmynk/gastrip/internal/session"
)

func newHelperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helper",
		Short: "Estimate a missing trip input with the assistant",
	}

	cmd.AddCommand(newDistanceHelperCmd())
	cmd.AddCommand(newConsumptionHelperCmd())
	cmd.AddCommand(newPriceHelperCmd())

	return cmd
}

func newDistanceHelperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Look up the road distance between two places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			origin, _ := cmd.Flags().GetString("origin")
			destination, _ := cmd.Flags().GetString("destination")
			roundTrip, _ := cmd.Flags().GetBool("round-trip")

			q := models.DistanceQuery{Origin: origin, Destination: destination, TripType: models.OneWay}
			if roundTrip {
				q.TripType = models.RoundTrip
			}
			return runHelper(cmd, q)
		},
	}

	cmd.Flags().String("origin", "", "starting place")
	cmd.Flags().String("destination", "", "destination place")
	cmd.Flags().Bool("round-trip", false, "count both legs")

	return cmd
}

func newConsumptionHelperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consumption",
		Short: "Estimate the average consumption of a vehicle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vehicle, _ := cmd.Flags().GetString("vehicle")
			profileName, _ := cmd.Flags().GetString("profile")

			profile, err := models.ParseRouteProfile(profileName)
			if err != nil {
				return err
			}
			return runHelper(cmd, models.ConsumptionQuery{Vehicle: vehicle, RouteProfile: profile})
		},
	}

	cmd.Flags().String("vehicle", "", "vehicle description, e.g. \"Seat Leon 1.5 TSI\"")
	cmd.Flags().String("profile", string(models.RouteMixed), "driving cycle: urban, mixed or highway")

	return cmd
}

func newPriceHelperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Look up today's fuel price in a city",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			location, _ := cmd.Flags().GetString("location")
			fuelName, _ := cmd.Flags().GetString("fuel")

			fuel, err := models.ParseFuelType(fuelName)
			if err != nil {
				return err
			}
			return runHelper(cmd, models.PriceQuery{Location: location, FuelType: fuel})
		},
	}

	cmd.Flags().String("location", "", "city to price fuel in")
	cmd.Flags().String("fuel", string(models.FuelGasoline), "fuel type: gasoline or diesel")

	return cmd
}

func runHelper(cmd *cobra.Command, q models.Query) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	value, err := a.session.RunHelper(commandContext(cmd), q)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", q.Kind(), calculator.FormatNumber(value))
	printState(cmd.OutOrStdout(), a.session.Snapshot())
	return nil
}

func newInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Get fuel-saving tips for the saved trip",
		Args:  cobra.NoArgs,
		RunE:  runInsightsCmd,
	}
}

func runInsightsCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	insights, err := a.session.GenerateInsights(commandContext(cmd))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(insights) == 0 {
		fmt.Fprintln(w, "no tips available")
		return nil
	}
	for _, in := range insights {
		fmt.Fprintf(w, "[%s] %s\n  %s\n", in.Impact, in.Title, in.Tip)
	}
	return nil
}

func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a shareable trip summary",
		Args:  cobra.NoArgs,
		RunE:  runShareCmd,
	}

	cmd.Flags().IntP("people", "p", 1, "number of people splitting the cost")

	return cmd
}

func runShareCmd(cmd *cobra.Command, _ []string) error {
	people, _ := cmd.Flags().GetInt("people")

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.session.SetPeople(people); err != nil {
		return err
	}

	text, err := a.session.ShareText()
	if err != nil {
		if errors.Is(err, session.ErrEmptyTrip) {
			return fmt.Errorf("%w: set distance, consumption and price first", err)
		}
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
