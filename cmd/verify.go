package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lapanaderia/semilla/internal/database"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-query the seeded tables and print row counts",
	Long: `Read every seeded table back and print its row count, plus the
per-category breakdown of menu items. Nothing is modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx := context.Background()
		if err := client.Connect(ctx); err != nil {
			return err
		}

		counts := client.Verify(ctx, []string{
			database.TableCategories,
			database.TableMenuItems,
			database.TableBreadLocations,
		})
		if len(counts) == 0 {
			return fmt.Errorf("verification failed for every table")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
