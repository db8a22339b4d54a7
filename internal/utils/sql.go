package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// validIdentifier matches unquoted SQL identifiers (database, table and column names).
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

var insertRegex = regexp.MustCompile(`(?is)^\s*INSERT\s+INTO\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(([^)]*)\)\s*VALUES\s*\((.*)\)\s*;?\s*$`)

func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// EscapeString doubles every single quote so s can sit inside a SQL string literal.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// QuoteString returns s as a single-quoted SQL string literal.
func QuoteString(s string) string {
	return "'" + EscapeString(s) + "'"
}

// Value is one element of a VALUES tuple.
type Value struct {
	Raw    string // as written in the statement
	Text   string // unquoted and unescaped for string literals, Raw otherwise
	Quoted bool
}

type InsertStatement struct {
	Table   string
	Columns []string
	Values  []Value
}

// Row maps column names to decoded values.
func (s *InsertStatement) Row() map[string]string {
	row := make(map[string]string, len(s.Columns))
	for i, col := range s.Columns {
		if i < len(s.Values) {
			row[col] = s.Values[i].Text
		}
	}
	return row
}

// ParseInsert parses a single-row `INSERT INTO t (cols) VALUES (...)` statement.
func ParseInsert(stmt string) (*InsertStatement, error) {
	matches := insertRegex.FindStringSubmatch(stmt)
	if matches == nil {
		return nil, fmt.Errorf("not an INSERT ... VALUES statement: %s", truncate(stmt, 60))
	}

	columns := SplitColumns(matches[2])
	for i, col := range columns {
		columns[i] = strings.TrimSpace(col)
		if !IsValidIdentifier(columns[i]) {
			return nil, fmt.Errorf("invalid column name %q in INSERT INTO %s", columns[i], matches[1])
		}
	}

	rawValues, err := SplitValues(matches[3])
	if err != nil {
		return nil, fmt.Errorf("INSERT INTO %s: %w", matches[1], err)
	}
	if len(rawValues) != len(columns) {
		return nil, fmt.Errorf("INSERT INTO %s: %d columns but %d values", matches[1], len(columns), len(rawValues))
	}

	values := make([]Value, len(rawValues))
	for i, raw := range rawValues {
		values[i] = decodeValue(raw)
	}

	return &InsertStatement{
		Table:   matches[1],
		Columns: columns,
		Values:  values,
	}, nil
}

func decodeValue(raw string) Value {
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		return Value{
			Raw:    raw,
			Text:   strings.ReplaceAll(raw[1:len(raw)-1], "''", "'"),
			Quoted: true,
		}
	}
	return Value{Raw: raw, Text: raw}
}

func SplitColumns(columnsStr string) []string {
	result := make([]string, 0, 8)
	var current strings.Builder
	parenDepth := 0

	for i := 0; i < len(columnsStr); i++ {
		char := columnsStr[i]
		switch char {
		case '(':
			parenDepth++
			current.WriteByte(char)
		case ')':
			parenDepth--
			current.WriteByte(char)
		case ',':
			if parenDepth == 0 {
				result = append(result, current.String())
				current.Reset()
			} else {
				current.WriteByte(char)
			}
		default:
			current.WriteByte(char)
		}
	}

	if current.Len() > 0 {
		result = append(result, current.String())
	}

	return result
}

// SplitValues splits a VALUES tuple body on top-level commas. Commas and
// doubled quotes inside string literals are kept with their literal.
func SplitValues(tuple string) ([]string, error) {
	result := make([]string, 0, 16)
	var current strings.Builder
	inQuote := false

	for i := 0; i < len(tuple); i++ {
		char := tuple[i]
		switch {
		case char == '\'' && inQuote && i+1 < len(tuple) && tuple[i+1] == '\'':
			current.WriteString("''")
			i++
		case char == '\'':
			inQuote = !inQuote
			current.WriteByte(char)
		case char == ',' && !inQuote:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(char)
		}
	}

	if inQuote {
		return nil, fmt.Errorf("unterminated string literal")
	}

	last := strings.TrimSpace(current.String())
	if last != "" || len(result) > 0 {
		result = append(result, last)
	}

	return result, nil
}

// SplitStatements breaks a script into its top-level lines. Newlines inside
// string literals do not end a statement; blank lines are dropped.
func SplitStatements(script string) []string {
	var result []string
	var current strings.Builder
	inQuote := false

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			result = append(result, stmt)
		}
		current.Reset()
	}

	for i := 0; i < len(script); i++ {
		char := script[i]
		switch {
		case char == '\'':
			inQuote = !inQuote
			current.WriteByte(char)
		case char == '\n' && !inQuote:
			flush()
		default:
			current.WriteByte(char)
		}
	}
	flush()

	return result
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
