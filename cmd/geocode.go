package main

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/partnerhub/partnerhub-cli/internal/store"
	"github.com/partnerhub/partnerhub-cli/pkg/geocode"
)

var geocodeConcurrency int

var geocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Backfill partner coordinates from their addresses",
	Long:  "Geocodes every partner still at the zero coordinate through Nominatim. Requests stay inside the client rate limit regardless of concurrency.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		companies, err := st.ListCompanies(ctx, store.Filter{})
		if err != nil {
			return err
		}

		client := geocode.NewClient(
			geocode.WithBaseURL(cfg.Geocode.BaseURL),
			geocode.WithUserAgent(cfg.Geocode.UserAgent),
			geocode.WithRateLimit(cfg.Geocode.Rate),
		)

		var matched, missed atomic.Int64

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(geocodeConcurrency)
		for _, c := range companies {
			if c.Location.Lat != 0 || c.Location.Lng != 0 || c.Address == "" {
				continue
			}
			g.Go(func() error {
				result, err := client.Geocode(gctx, c.Address)
				if err != nil {
					return err
				}
				if !result.Matched {
					missed.Add(1)
					zap.L().Debug("address not matched", zap.String("name", c.Name))
					return nil
				}

				c.Location.Lat = result.Latitude
				c.Location.Lng = result.Longitude
				if err := st.UpdateCompany(gctx, c); err != nil {
					return err
				}
				matched.Add(1)
				zap.L().Info("partner geocoded",
					zap.String("name", c.Name),
					zap.Float64("lat", result.Latitude),
					zap.Float64("lng", result.Longitude),
				)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Printf("Geocodificados: %d, sem correspondência: %d\n", matched.Load(), missed.Load())
		return nil
	},
}

func init() {
	geocodeCmd.Flags().IntVar(&geocodeConcurrency, "concurrency", 2, "max in-flight geocode requests")
	rootCmd.AddCommand(geocodeCmd)
}
