package seeder

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Lumos-Labs-HQ/seedgen/internal/fixture"
	"github.com/Lumos-Labs-HQ/seedgen/internal/utils"
	"github.com/Masterminds/squirrel"
)

type Generator struct {
	database string
	qb       squirrel.StatementBuilderType
}

func New(database string) *Generator {
	return &Generator{
		database: database,
		qb:       squirrel.StatementBuilder,
	}
}

// Statements returns the seed script one statement per element: the USE/GO
// preamble, the resets, every event followed by its ticket categories, and
// the trailing batch separator.
func (g *Generator) Statements(set *fixture.SeedSet) ([]string, error) {
	if !utils.IsValidIdentifier(g.database) {
		return nil, fmt.Errorf("invalid database name: %q", g.database)
	}

	stmts := make([]string, 0, 5+len(set.Events)+set.CategoryCount())
	stmts = append(stmts, fmt.Sprintf("USE %s;", g.database), BatchSeparator)

	// Children first so the reset never trips the foreign key.
	for _, table := range []string{TicketCategoriesTable, EventsTable} {
		stmt, err := g.deleteAll(table)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	for _, evt := range set.Events {
		stmts = append(stmts, eventInsert(evt))
		for _, cat := range evt.TicketCategories {
			stmts = append(stmts, ticketCategoryInsert(evt.ID, cat))
		}
	}

	stmts = append(stmts, BatchSeparator)
	return stmts, nil
}

// Render returns the seed script as written to disk.
func (g *Generator) Render(set *fixture.SeedSet) (string, error) {
	stmts, err := g.Statements(set)
	if err != nil {
		return "", err
	}
	return strings.Join(stmts, "\n"), nil
}

// WriteFile renders set and writes it to path, replacing any existing file.
// The parent directory must already exist.
func (g *Generator) WriteFile(path string, set *fixture.SeedSet) error {
	content, err := g.Render(set)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}

	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write seed file %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close seed file %s: %w", path, err)
	}
	return nil
}

func (g *Generator) deleteAll(table string) (string, error) {
	query, _, err := g.qb.Delete(table).ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build reset for %s: %w", table, err)
	}
	return query + ";", nil
}

func eventInsert(evt fixture.Event) string {
	return insertStatement(EventsTable, EventColumns, []string{
		utils.QuoteString(evt.ID),
		utils.QuoteString(evt.Title),
		utils.QuoteString(evt.Artist),
		utils.QuoteString(evt.Description),
		utils.QuoteString(evt.Category),
		utils.QuoteString(evt.Date),
		utils.QuoteString(evt.Time),
		strconv.Itoa(evt.Year),
		utils.QuoteString(evt.VenueName),
		utils.QuoteString(evt.VenueAddress),
		utils.QuoteString(evt.VenueCity),
		strconv.Itoa(evt.VenueCapacity),
		utils.QuoteString(evt.ImageURL),
		strconv.Itoa(evt.IsFeatured.Int()),
	})
}

func ticketCategoryInsert(eventID string, cat fixture.TicketCategory) string {
	return insertStatement(TicketCategoriesTable, TicketCategoryColumns, []string{
		utils.QuoteString(cat.ID),
		utils.QuoteString(eventID),
		utils.QuoteString(cat.Name),
		utils.QuoteString(cat.DisplayName),
		strconv.FormatInt(cat.Price, 10),
		strconv.Itoa(cat.TotalQuantity),
		strconv.Itoa(cat.AvailableQuantity),
	})
}

func insertStatement(table string, columns, values []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		table, strings.Join(columns, ", "), strings.Join(values, ", "))
}
