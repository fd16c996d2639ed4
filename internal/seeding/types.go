package seeding

import (
	"context"

	"github.com/lapanaderia/semilla/internal/database"
)

// Task is one table-plus-records unit processed in a single run.
type Task struct {
	Table       string
	Records     []database.Record
	Description string
}

// Options control the optional phases around the insert loop. Skipping
// either phase changes no other step's behavior.
type Options struct {
	ClearExisting bool
	VerifyData    bool
}

// Summary reports the outcome of a run. A run with insert failures is a
// partial success, not an error.
type Summary struct {
	TablesAttempted int
	TablesSeeded    int
	RecordsInserted int
	Failures        int
}

// TableClient is the surface the runner needs from the remote datastore.
// *database.Client implements it.
type TableClient interface {
	Connect(ctx context.Context) error
	TestConnection(ctx context.Context, probeTable string) bool
	ClearTables(ctx context.Context, tables []string)
	InsertRows(ctx context.Context, table string, records []database.Record, description string) []database.Record
	Verify(ctx context.Context, tables []string) map[string]int
}
