package database

// Record is a single row exchanged with the remote store. Keys are column
// names; values are whatever the JSON decoder or the driver produced. No
// local validation happens beyond what the remote tables enforce.
type Record map[string]interface{}

// Table names in the remote datastore.
const (
	TableCategories     = "categories"
	TableMenuItems      = "menu_items"
	TableBreadLocations = "bread_locations"
)

// ProbeTable is queried with a single-row select to confirm reachability
// before any destructive operation runs.
const ProbeTable = TableCategories
