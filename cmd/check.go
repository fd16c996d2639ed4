package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lapanaderia/semilla/internal/database"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the datastore connection",
	Long: `Run a minimal single-row read against the probe table to confirm the
remote datastore is reachable with the configured credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if !client.TestConnection(context.Background(), database.ProbeTable) {
			return fmt.Errorf("datastore unreachable")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
