package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hotel_search/internal/adapters/guestline"
	"hotel_search/internal/adapters/observability"
	"hotel_search/internal/app"
	"hotel_search/internal/shared"
)

func main() {
	cfg := shared.Load()

	// the table goes to stdout, logs to stderr
	log.Logger = observability.NewLoggerTo(os.Stderr, cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg shared.Config) *cobra.Command {
	var rating, adults, children string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Loads the hotels and prints the ones with rooms fitting the party.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := guestline.New(cfg.HotelsURL, cfg.RoomsBaseURL, cfg.HTTPTimeout)
			if err != nil {
				return err
			}
			filter, err := parseFilter(rating, adults, children)
			if err != nil {
				return err
			}

			views := app.NewViewService(cmd.Context(), client, filter)
			defer views.CloseAll()

			v := views.Open()
			if err := v.Wait(cmd.Context()); err != nil {
				return err
			}
			vm := v.Render()
			if vm.Error != nil {
				return errors.New(*vm.Error)
			}
			renderTable(cmd.OutOrStdout(), vm.Hotels)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cfg.Filter
	cmd.Flags().StringVar(&rating, "rating", fmt.Sprint(f.Rating.N), "minimum star rating (1-5)")
	cmd.Flags().StringVar(&adults, "adults", fmt.Sprint(f.Adults.N), "number of adults (1-10)")
	cmd.Flags().StringVar(&children, "children", fmt.Sprint(f.Children.N), "number of children (0-10)")
	return cmd
}
