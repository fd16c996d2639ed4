package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lapanaderia/semilla/internal/config"
	"github.com/lapanaderia/semilla/internal/database"
	"github.com/lapanaderia/semilla/internal/dataio"
	"github.com/lapanaderia/semilla/internal/seeding"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the categories and menu_items tables",
	Long: `Load categories.json and menu_items.json from the data directory and
upload them, categories first so the menu items' category references
resolve.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenuSeed()
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// newClient wires the loader and table client from configuration. A missing
// credential variable is not an error here; the loader reports it when the
// run validates, before any remote call is made.
func newClient() (*database.Client, *config.Loader, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	base, err := os.Getwd()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	loader := config.NewLoader(base, cfg)
	creds, _ := loader.Environment()
	return database.New(creds.URL, creds.Key), loader, cfg, nil
}

func seedOptions(cfg *config.Config) seeding.Options {
	return seeding.Options{
		ClearExisting: cfg.Seed.ClearExisting && !noClear,
		VerifyData:    cfg.Seed.VerifyData && !noVerify,
	}
}

func runMenuSeed() error {
	client, loader, cfg, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	paths := loader.DataFilePaths()

	fmt.Println("Loading JSON data files...")
	categories, err := dataio.LoadRecords(paths[config.CategoriesFile])
	if err != nil {
		return err
	}
	menuItems, err := dataio.LoadRecords(paths[config.MenuItemsFile])
	if err != nil {
		return err
	}
	color.Green("✅ Loaded %d categories", len(categories))
	color.Green("✅ Loaded %d menu items", len(menuItems))

	// Categories go first to satisfy the menu items' foreign key.
	tasks := []seeding.Task{
		{Table: database.TableCategories, Records: categories, Description: "categories"},
		{Table: database.TableMenuItems, Records: menuItems, Description: "menu items"},
	}

	runner := seeding.NewRunner(loader, client)
	_, err = runner.Run(context.Background(), tasks, seedOptions(cfg))
	return err
}
