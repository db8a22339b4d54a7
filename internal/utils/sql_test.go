package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeString(t *testing.T) {
	assert.Equal(t, "plain", EscapeString("plain"))
	assert.Equal(t, "world''s", EscapeString("world's"))
	assert.Equal(t, "''''", EscapeString("''"))
	assert.Equal(t, "'Rock ''n'' Roll'", QuoteString("Rock 'n' Roll"))
}

func TestIsValidIdentifier(t *testing.T) {
	for _, name := range []string{"eventix", "_tmp", "Events2"} {
		assert.True(t, IsValidIdentifier(name), name)
	}
	for _, name := range []string{"", "2fast", "drop table;", "a-b", "x'y"} {
		assert.False(t, IsValidIdentifier(name), name)
	}
}

func TestSplitValues(t *testing.T) {
	values, err := SplitValues(`'a, b', 'it''s', 42, 'x'`)
	require.NoError(t, err)
	assert.Equal(t, []string{`'a, b'`, `'it''s'`, "42", `'x'`}, values)

	values, err = SplitValues(`''`)
	require.NoError(t, err)
	assert.Equal(t, []string{`''`}, values)

	values, err = SplitValues("")
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = SplitValues(`'open, 1`)
	assert.Error(t, err)
}

func TestParseInsert(t *testing.T) {
	stmt := `INSERT INTO TicketCategories (id, event_id, name, display_name, price, quantity_total, available_quantity) VALUES ('cat-001-1', 'evt-001', 'GENERAL', 'General Admission', 2990000, 30000, 15000);`

	insert, err := ParseInsert(stmt)
	require.NoError(t, err)
	assert.Equal(t, "TicketCategories", insert.Table)
	assert.Equal(t, []string{"id", "event_id", "name", "display_name", "price", "quantity_total", "available_quantity"}, insert.Columns)
	require.Len(t, insert.Values, 7)
	assert.True(t, insert.Values[0].Quoted)
	assert.Equal(t, "cat-001-1", insert.Values[0].Text)
	assert.False(t, insert.Values[4].Quoted)
	assert.Equal(t, "2990000", insert.Values[4].Raw)

	row := insert.Row()
	assert.Equal(t, "General Admission", row["display_name"])
	assert.Equal(t, "15000", row["available_quantity"])
}

func TestParseInsertUnescapesLiterals(t *testing.T) {
	insert, err := ParseInsert(`INSERT INTO Events (id, description) VALUES ('e1', 'don''t (ever), stop');`)
	require.NoError(t, err)
	assert.Equal(t, "don't (ever), stop", insert.Row()["description"])
	assert.Equal(t, `'don''t (ever), stop'`, insert.Values[1].Raw)
}

func TestParseInsertErrors(t *testing.T) {
	tests := []struct {
		name string
		stmt string
	}{
		{"not an insert", "DELETE FROM Events;"},
		{"count mismatch", "INSERT INTO Events (id, title) VALUES ('e1');"},
		{"unterminated", "INSERT INTO Events (id) VALUES ('e1);"},
		{"bad column", "INSERT INTO Events (id, \"title\") VALUES ('e1', 'x');"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInsert(tt.stmt)
			assert.Error(t, err)
		})
	}
}

func TestSplitStatements(t *testing.T) {
	script := "USE eventix;\r\nGO\n\nINSERT INTO Events (id, description) VALUES ('e1', 'line one\nline two');\nGO"

	stmts := SplitStatements(script)
	require.Len(t, stmts, 4)
	assert.Equal(t, "USE eventix;", stmts[0])
	assert.Equal(t, "GO", stmts[1])
	assert.Equal(t, "INSERT INTO Events (id, description) VALUES ('e1', 'line one\nline two');", stmts[2])
	assert.Equal(t, "GO", stmts[3])
}
