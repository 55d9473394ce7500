package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partnerhub/partnerhub-cli/internal/model"
)

// Default map camera: country-level view of Brazil.
var defaultMapView = model.MapView{
	Center: model.GeoPoint{Lat: -14.235, Lng: -51.9253},
	Zoom:   4,
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Manage the saved map camera position",
}

var mapShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved camera position",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		view, err := st.GetMapView(ctx)
		if err != nil {
			return err
		}
		if view == nil {
			view = &defaultMapView
		}
		fmt.Printf("Centro: %.6f, %.6f  Zoom: %d\n", view.Center.Lat, view.Center.Lng, view.Zoom)
		return nil
	},
}

var mapSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save the camera position",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		lat, _ := cmd.Flags().GetFloat64("lat")
		lng, _ := cmd.Flags().GetFloat64("lng")
		zoom, _ := cmd.Flags().GetInt("zoom")

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		return st.SetMapView(ctx, model.MapView{
			Center: model.GeoPoint{Lat: lat, Lng: lng},
			Zoom:   zoom,
		})
	},
}

var mapResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the camera to the default country view",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		return st.SetMapView(ctx, defaultMapView)
	},
}

func init() {
	mapSetCmd.Flags().Float64("lat", defaultMapView.Center.Lat, "camera latitude")
	mapSetCmd.Flags().Float64("lng", defaultMapView.Center.Lng, "camera longitude")
	mapSetCmd.Flags().Int("zoom", defaultMapView.Zoom, "camera zoom level")
	mapCmd.AddCommand(mapShowCmd, mapSetCmd, mapResetCmd)
	rootCmd.AddCommand(mapCmd)
}
