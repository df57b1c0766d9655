package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Rana718/distria-seed/internal/geo"
	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the Santa Cruz zones used for coordinates",
	Run: func(cmd *cobra.Command, args []string) {
		printZones(cmd.OutOrStdout())
	},
}

func printZones(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ZONE\tLAT\tLNG\tRADIUS")
	for _, z := range geo.SantaCruzZones {
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.3f\n", z.Name, z.Lat, z.Lng, z.Radius)
	}
	fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.3f\n", "(city-wide)", geo.CityCenter.Lat, geo.CityCenter.Lng, geo.CityRadius)
	w.Flush()

	b := geo.CityBounds
	fmt.Fprintf(out, "\n%.0f%% of points fall in a zone; all are clamped to lat [%.2f, %.2f], lng [%.2f, %.2f]\n",
		geo.ZoneProbability*100, b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}
