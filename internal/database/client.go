package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Client is the single point of contact with the remote datastore. It owns
// one lazily-created connection, constructed at most once and reused for
// every call in a run.
type Client struct {
	url  string
	key  string
	qb   squirrel.StatementBuilderType
	conn querier
}

func New(url, key string) *Client {
	return &Client{
		url: url,
		key: key,
		qb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// connectStrategy tags one way of building the connection pool. Strategies
// are attempted in order; the last failure propagates.
type connectStrategy struct {
	name      string
	configure func(*pgxpool.Config)
}

var connectStrategies = []connectStrategy{
	{
		name: "primary",
		configure: func(cfg *pgxpool.Config) {
			cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec
			cfg.MaxConns = 2
			cfg.MinConns = 0
			cfg.MaxConnLifetime = 15 * time.Minute
			cfg.MaxConnIdleTime = 3 * time.Minute
			cfg.HealthCheckPeriod = 30 * time.Second
		},
	},
	{name: "reduced", configure: func(*pgxpool.Config) {}},
}

// Connect builds the connection on first use and is a no-op afterwards.
// The primary strategy carries the explicit pool options; when it fails
// the reduced strategy retries with a plain parsed config before the
// error propagates.
func (c *Client) Connect(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}

	var lastErr error
	for i, strategy := range connectStrategies {
		conn, err := c.dial(ctx, strategy)
		if err != nil {
			lastErr = err
			if i < len(connectStrategies)-1 {
				color.Yellow("⚠️  Connection with %s options failed, retrying with %s options: %v",
					strategy.name, connectStrategies[i+1].name, err)
			}
			continue
		}
		if i > 0 {
			color.Green("✅ Connected with %s options", strategy.name)
		}
		c.conn = conn
		return nil
	}
	return fmt.Errorf("failed to connect to datastore: %w", lastErr)
}

func (c *Client) dial(ctx context.Context, strategy connectStrategy) (querier, error) {
	cfg, err := pgxpool.ParseConfig(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection URL: %w", err)
	}
	// The service key acts as the connection password when the URL itself
	// carries none.
	if cfg.ConnConfig.Password == "" && c.key != "" {
		cfg.ConnConfig.Password = c.key
	}
	strategy.configure(cfg)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &poolQuerier{pool: pool}, nil
}

// Close releases the connection if one was built.
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// TestConnection runs a single-row select against the probe table. Any
// failure is reported and converted to false.
func (c *Client) TestConnection(ctx context.Context, probeTable string) bool {
	if err := c.Connect(ctx); err != nil {
		color.Red("❌ Connection test failed: %v", err)
		return false
	}

	query, args, err := c.qb.Select("*").From(probeTable).Limit(1).ToSql()
	if err == nil {
		_, err = c.conn.Query(ctx, query, args...)
	}
	if err != nil {
		color.Red("❌ Connection test failed: %v", err)
		return false
	}
	color.Green("✅ Connection test successful")
	return true
}

// ClearTables removes existing rows, dependent tables first per the default
// deletion order. Per-table failures are warnings; the remaining tables are
// still cleared.
func (c *Client) ClearTables(ctx context.Context, tables []string) {
	color.Cyan("🗑️  Clearing existing data...")
	for _, table := range orderForClear(tables) {
		cond := ConditionFor(table)
		query, args, err := cond.apply(c.qb.Delete(table)).ToSql()
		if err == nil {
			_, err = c.conn.Exec(ctx, query, args...)
		}
		if err != nil {
			color.Yellow("⚠️  Error clearing %s: %v", table, err)
			continue
		}
		color.Green("✅ Cleared %s table", table)
	}
}

// InsertRows sends all records for a table in one bulk insert and returns
// the inserted rows. Failures are reported with the table's description and
// yield nil; callers decide whether to continue.
func (c *Client) InsertRows(ctx context.Context, table string, records []Record, description string) []Record {
	if description == "" {
		description = table
	}
	if len(records) == 0 {
		color.Yellow("⚠️  No %s to insert", description)
		return []Record{}
	}

	columns := columnsOf(records)
	builder := c.qb.Insert(table).Columns(columns...).Suffix("RETURNING *")
	for _, record := range records {
		values := make([]interface{}, len(columns))
		for i, column := range columns {
			values[i] = record[column]
		}
		builder = builder.Values(values...)
	}

	query, args, err := builder.ToSql()
	var inserted []Record
	if err == nil {
		inserted, err = c.conn.Query(ctx, query, args...)
	}
	if err != nil {
		color.Red("❌ Error seeding %s: %v", description, err)
		return nil
	}
	color.Green("✅ Inserted %d %s", len(records), description)
	return inserted
}

// Verify re-reads each table and reports its row count; menu_items
// additionally gets a per-category breakdown in first-seen order. Tables
// that fail to read are reported and omitted from the result.
func (c *Client) Verify(ctx context.Context, tables []string) map[string]int {
	color.Cyan("\n🔍 Verifying seeded data...")
	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		query, args, err := c.qb.Select("*").From(table).ToSql()
		var rows []Record
		if err == nil {
			rows, err = c.conn.Query(ctx, query, args...)
		}
		if err != nil {
			color.Red("❌ Error verifying %s: %v", table, err)
			continue
		}
		counts[table] = len(rows)
		color.Green("✅ Found %d rows in %s", len(rows), table)

		if table == TableMenuItems {
			order, byCategory := categoryBreakdown(rows)
			fmt.Println("\nMenu items by category:")
			for _, category := range order {
				fmt.Printf("  - %s: %d items\n", category, byCategory[category])
			}
		}
	}
	return counts
}

// unknownCategory labels menu items whose records carry no category field.
const unknownCategory = "Unknown"

// categoryBreakdown counts rows per category, preserving first-seen order.
// Only a missing (or NULL) category defaults to unknownCategory; any other
// value, empty string included, counts as its own category.
func categoryBreakdown(rows []Record) ([]string, map[string]int) {
	var order []string
	counts := make(map[string]int)
	for _, row := range rows {
		category := unknownCategory
		if v, ok := row["category"]; ok && v != nil {
			category = fmt.Sprint(v)
		}
		if _, seen := counts[category]; !seen {
			order = append(order, category)
		}
		counts[category]++
	}
	return order, counts
}

// columnsOf returns the union of every record's keys, sorted so generated
// statements are deterministic. Records missing one of the columns insert
// NULL for it.
func columnsOf(records []Record) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, record := range records {
		for column := range record {
			if !seen[column] {
				seen[column] = true
				columns = append(columns, column)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
