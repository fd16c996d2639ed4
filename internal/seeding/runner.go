package seeding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/lapanaderia/semilla/internal/config"
	"github.com/lapanaderia/semilla/internal/database"
)

var (
	// ErrConfigurationInvalid aborts a run before any remote call.
	ErrConfigurationInvalid = errors.New("configuration validation failed")
	// ErrConnectionFailed aborts a run before any mutation.
	ErrConnectionFailed = errors.New("failed to reach the remote datastore")
)

// Runner sequences one seeding run: validate, probe, clear, insert, verify.
// The sequence is strictly linear; nothing branches back.
type Runner struct {
	loader *config.Loader
	client TableClient
}

func NewRunner(loader *config.Loader, client TableClient) *Runner {
	return &Runner{loader: loader, client: client}
}

// Run executes the seeding sequence for the given tasks in their given
// order. A per-task insert failure is recorded in the summary and does not
// stop later tasks; only an invalid configuration or an unreachable
// datastore abort the run.
func (r *Runner) Run(ctx context.Context, tasks []Task, opts Options) (Summary, error) {
	printHeader("Starting Database Seeding Process")

	summary := Summary{TablesAttempted: len(tasks)}

	if !r.loader.Validate() {
		return summary, ErrConfigurationInvalid
	}

	color.Cyan("\nTesting datastore connection...")
	if err := r.client.Connect(ctx); err != nil {
		color.Red("❌ %v", err)
		return summary, ErrConnectionFailed
	}
	if !r.client.TestConnection(ctx, database.ProbeTable) {
		color.Red("❌ Failed to connect to the datastore. Aborting seeding process.")
		return summary, ErrConnectionFailed
	}

	if opts.ClearExisting {
		r.client.ClearTables(ctx, tableNames(tasks))
	}

	for _, task := range tasks {
		description := task.Description
		if description == "" {
			description = task.Table
		}
		color.Cyan("\n🌱 Seeding %s...", description)
		if inserted := r.client.InsertRows(ctx, task.Table, task.Records, description); inserted != nil {
			summary.TablesSeeded++
			summary.RecordsInserted += len(task.Records)
		} else {
			summary.Failures++
		}
	}

	printHeader(fmt.Sprintf("Seeding Summary: %d/%d tables seeded successfully",
		summary.TablesSeeded, summary.TablesAttempted))
	fmt.Printf("Total records inserted: %d\n", summary.RecordsInserted)

	if opts.VerifyData && summary.TablesSeeded > 0 {
		r.client.Verify(ctx, tableNames(tasks))
	}

	if summary.Failures == 0 {
		color.Green("\n✅ Database seeding completed successfully!")
	} else {
		color.Yellow("\n⚠️  %d table(s) failed to seed", summary.Failures)
	}
	return summary, nil
}

func tableNames(tasks []Task) []string {
	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = task.Table
	}
	return names
}

func printHeader(title string) {
	separator := strings.Repeat("=", 50)
	fmt.Println("\n" + separator)
	fmt.Println(title)
	fmt.Println(separator)
}
