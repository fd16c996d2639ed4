package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lapanaderia/semilla/internal/seeding"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Seed the bread_locations table",
	Long: `Upload the compiled-in "Where Has Our Bread Been?" entries into the
bread_locations table. This data set ships with the binary; no JSON
file is read.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, loader, cfg, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		// No JSON files back this run, so none are required on disk.
		loader.SetRequiredFiles()

		fmt.Println("🍞 Seeding Bread Locations Data")

		tasks := []seeding.Task{{
			Table:       seeding.LocationsTable,
			Records:     seeding.InitialBreadLocations(),
			Description: "bread locations",
		}}

		runner := seeding.NewRunner(loader, client)
		_, err = runner.Run(context.Background(), tasks, seedOptions(cfg))
		return err
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}
