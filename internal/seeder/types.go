package seeder

const (
	EventsTable           = "Events"
	TicketCategoriesTable = "TicketCategories"

	// BatchSeparator ends a batch for SQL Server clients (sqlcmd, SSMS).
	BatchSeparator = "GO"
)

var EventColumns = []string{
	"id",
	"title",
	"artist",
	"description",
	"category",
	"date",
	"time",
	"year",
	"venueName",
	"venueAddress",
	"venueCity",
	"venueCapacity",
	"imageUrl",
	"isFeatured",
}

// TicketCategoryColumns follows the target schema, where total_quantity is
// stored as quantity_total. max_per_order has no column.
var TicketCategoryColumns = []string{
	"id",
	"event_id",
	"name",
	"display_name",
	"price",
	"quantity_total",
	"available_quantity",
}

// Report summarizes a parsed seed script.
type Report struct {
	Database         string
	Events           []map[string]string
	TicketCategories []map[string]string
}
