package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the narrow surface the client needs from a connection. The
// production implementation wraps a pgx pool; tests substitute fakes.
type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (int64, error)
	Query(ctx context.Context, sql string, args ...interface{}) ([]Record, error)
	Ping(ctx context.Context) error
	Close()
}

type poolQuerier struct {
	pool *pgxpool.Pool
}

func (p *poolQuerier) Exec(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (p *poolQuerier) Query(ctx context.Context, sql string, args ...interface{}) ([]Record, error) {
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var records []Record
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		record := make(Record, len(fields))
		for i, field := range fields {
			record[field.Name] = values[i]
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (p *poolQuerier) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *poolQuerier) Close() {
	p.pool.Close()
}
