package seeder

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"

	"github.com/Lumos-Labs-HQ/seedgen/internal/utils"
)

var useRegex = regexp.MustCompile(`^USE\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*;$`)

// VerifyFile reads a seed script from disk and verifies it.
func VerifyFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Verify(string(data))
}

// Verify parses a seed script produced by Generator and checks its framing,
// column lists, and that every ticket category points at an event inserted
// earlier in the same script.
func Verify(script string) (*Report, error) {
	stmts := utils.SplitStatements(script)
	if len(stmts) < 5 {
		return nil, fmt.Errorf("seed script too short: %d statements", len(stmts))
	}

	matches := useRegex.FindStringSubmatch(stmts[0])
	if matches == nil {
		return nil, fmt.Errorf("statement 1: expected USE <database>;, got %q", stmts[0])
	}

	expected := []string{
		BatchSeparator,
		"DELETE FROM " + TicketCategoriesTable + ";",
		"DELETE FROM " + EventsTable + ";",
	}
	for i, want := range expected {
		if stmts[i+1] != want {
			return nil, fmt.Errorf("statement %d: expected %q, got %q", i+2, want, stmts[i+1])
		}
	}
	if last := stmts[len(stmts)-1]; last != BatchSeparator {
		return nil, fmt.Errorf("seed script must end with %s, got %q", BatchSeparator, last)
	}

	report := &Report{Database: matches[1]}
	eventIDs := make(map[string]struct{})
	categoryIDs := make(map[string]struct{})

	for i, stmt := range stmts[4 : len(stmts)-1] {
		n := i + 5
		insert, err := utils.ParseInsert(stmt)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", n, err)
		}

		switch insert.Table {
		case EventsTable:
			if !slices.Equal(insert.Columns, EventColumns) {
				return nil, fmt.Errorf("statement %d: unexpected %s columns %v", n, EventsTable, insert.Columns)
			}
			row := insert.Row()
			if _, dup := eventIDs[row["id"]]; dup {
				return nil, fmt.Errorf("statement %d: duplicate event id %s", n, row["id"])
			}
			eventIDs[row["id"]] = struct{}{}
			report.Events = append(report.Events, row)

		case TicketCategoriesTable:
			if !slices.Equal(insert.Columns, TicketCategoryColumns) {
				return nil, fmt.Errorf("statement %d: unexpected %s columns %v", n, TicketCategoriesTable, insert.Columns)
			}
			row := insert.Row()
			if _, dup := categoryIDs[row["id"]]; dup {
				return nil, fmt.Errorf("statement %d: duplicate ticket category id %s", n, row["id"])
			}
			if _, ok := eventIDs[row["event_id"]]; !ok {
				return nil, fmt.Errorf("statement %d: ticket category %s references unknown event %s", n, row["id"], row["event_id"])
			}
			if err := checkQuantities(row); err != nil {
				return nil, fmt.Errorf("statement %d: ticket category %s: %w", n, row["id"], err)
			}
			categoryIDs[row["id"]] = struct{}{}
			report.TicketCategories = append(report.TicketCategories, row)

		default:
			return nil, fmt.Errorf("statement %d: unexpected table %s", n, insert.Table)
		}
	}

	return report, nil
}

func checkQuantities(row map[string]string) error {
	total, err := strconv.Atoi(row["quantity_total"])
	if err != nil {
		return fmt.Errorf("quantity_total is not an integer: %q", row["quantity_total"])
	}
	available, err := strconv.Atoi(row["available_quantity"])
	if err != nil {
		return fmt.Errorf("available_quantity is not an integer: %q", row["available_quantity"])
	}
	if available < 0 || available > total {
		return fmt.Errorf("available quantity %d outside 0..%d", available, total)
	}
	return nil
}
