package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-widget/internal/clock"
	"github.com/i474232898/weather-widget/internal/controller"
	"github.com/i474232898/weather-widget/internal/render"
	"github.com/i474232898/weather-widget/internal/terminal"
	"github.com/i474232898/weather-widget/internal/weather"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seed     int64
		locale   string
		timezone string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "weather-card [city]",
		Short: "Print the offline weather card for a city",
		Long: "Looks the city up in the built-in offline list and prints its weather card.\n" +
			"Without arguments the default city is shown.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := weather.DefaultCatalog()
			out := cmd.OutOrStdout()

			if list {
				for _, k := range catalog.Keys() {
					fmt.Fprintln(out, k)
				}
				return nil
			}

			loc := time.Local
			if timezone != "" {
				l, err := time.LoadLocation(timezone)
				if err != nil {
					return fmt.Errorf("invalid timezone: %w", err)
				}
				loc = l
			}

			rnd := weather.NewSource(seed)
			resolver, err := weather.NewResolver(catalog, weather.DefaultCityKey, rnd)
			if err != nil {
				return err
			}

			card := terminal.NewCard()
			clk, err := clock.New(card, locale, loc)
			if err != nil {
				return err
			}

			notify := controller.NotifierFunc(func(string, weather.ResolvedCity) {
				fmt.Fprintln(cmd.ErrOrStderr(), terminal.Warning(controller.FallbackNotice))
			})
			ctrl := controller.New(resolver, render.NewRenderer(card, rnd), clk, notify)

			ctrl.Start()
			if len(args) > 0 {
				ctrl.Search(strings.Join(args, " "))
			}

			fmt.Fprintln(out, card.View())
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the jitter source (0 = random)")
	cmd.Flags().StringVar(&locale, "locale", "en-US", "BCP 47 locale used for the date")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA time zone (default local)")
	cmd.Flags().BoolVar(&list, "list", false, "list the cities in the offline catalog")

	return cmd
}
