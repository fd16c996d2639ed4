package database

import "github.com/Masterminds/squirrel"

// Operator selects the comparison used by a DeleteCondition.
type Operator int

const (
	// OpGtOrEq matches every row whose column is >= the value. Used for
	// integer-keyed tables where ids start at zero.
	OpGtOrEq Operator = iota
	// OpNotEq matches every row whose column differs from the value. Used
	// for string-keyed tables with an impossible sentinel value.
	OpNotEq
)

// DeleteCondition describes the filter that selects all current rows of a
// table for removal before reseeding. Tables differ because their id
// columns differ in type.
type DeleteCondition struct {
	Column string
	Op     Operator
	Value  interface{}
}

// sentinelID never occurs as a real row id, so `id <> sentinelID` matches
// every row of a string-keyed table.
const sentinelID = "nonexistent"

// deleteConditions registers the clear-all filter per table. New tables
// need an entry here; integer-keyed tables must not rely on the fallback.
var deleteConditions = map[string]DeleteCondition{
	TableMenuItems:  {Column: "id", Op: OpNotEq, Value: sentinelID},
	TableCategories: {Column: "id", Op: OpGtOrEq, Value: 0},
}

// defaultDeletionOrder clears tables with inbound foreign keys before the
// tables they reference.
var defaultDeletionOrder = []string{TableMenuItems, TableCategories}

// ConditionFor returns the registered condition for a table. Unregistered
// tables fall back to a sentinel-based delete, which is only safe for
// string-keyed ids (bread_locations relies on this).
func ConditionFor(table string) DeleteCondition {
	if cond, ok := deleteConditions[table]; ok {
		return cond
	}
	return DeleteCondition{Column: "id", Op: OpNotEq, Value: sentinelID}
}

func (c DeleteCondition) apply(b squirrel.DeleteBuilder) squirrel.DeleteBuilder {
	switch c.Op {
	case OpGtOrEq:
		return b.Where(squirrel.GtOrEq{c.Column: c.Value})
	default:
		return b.Where(squirrel.NotEq{c.Column: c.Value})
	}
}

// orderForClear arranges tables so that entries of defaultDeletionOrder
// come first, in that order; the rest keep their given relative order.
func orderForClear(tables []string) []string {
	known := make(map[string]bool, len(defaultDeletionOrder))
	for _, name := range defaultDeletionOrder {
		known[name] = true
	}

	ordered := make([]string, 0, len(tables))
	for _, name := range defaultDeletionOrder {
		for _, table := range tables {
			if table == name {
				ordered = append(ordered, table)
			}
		}
	}
	for _, table := range tables {
		if !known[table] {
			ordered = append(ordered, table)
		}
	}
	return ordered
}
