// Package compare generates pairs of column-aligned SELECT statements from
// table metadata so that two result sets can be diffed row by row (e.g. via
// EXCEPT/INTERSECT or external diff tooling).
package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shibukawa/tablediff"
)

// ErrNoCommonColumns is returned when column alignment yields no columns.
var ErrNoCommonColumns = errors.New("no common columns between source and target")

// Options controls comparison statement generation
type Options struct {
	UseIntersection   bool              // Restrict to columns present in both tables
	OrderByKeys       bool              // Emit ORDER BY on the resolved key columns
	Dialect           tablediff.Dialect // Identifier quoting dialect
	QuotedIdentifiers bool              // Force ANSI double-quoted identifiers
}

// DefaultOptions returns the options used when no flags or config override them
func DefaultOptions() Options {
	return Options{
		UseIntersection: true,
		OrderByKeys:     true,
		Dialect:         tablediff.DialectANSI,
	}
}

// AlignColumns determines the column list shared by both comparison SELECTs.
//
// With useIntersection, the result is the source's columns in declared order
// filtered to names that also appear in the target (exact string match, no
// normalization). Without it, all source columns are returned unchanged; the
// target SELECT may then reference columns the target does not have, which is
// permitted but not recommended for comparison.
func AlignColumns(source, target *tablediff.TableMetadata, useIntersection bool) []string {
	if !useIntersection {
		return source.ColumnNames()
	}

	targetNames := make(map[string]struct{}, len(target.Columns))
	for _, n := range target.ColumnNames() {
		targetNames[n] = struct{}{}
	}

	var aligned []string

	for _, n := range source.ColumnNames() {
		if _, ok := targetNames[n]; ok {
			aligned = append(aligned, n)
		}
	}

	return aligned
}

// BuildSelect renders a single SELECT statement for the given table and
// column list. The returned text has no trailing semicolon or newline.
func BuildSelect(table *tablediff.TableMetadata, columns, orderByColumns []string, dialect tablediff.Dialect, quotedIdentifiers bool) string {
	quoteDialect := dialect
	if quotedIdentifiers {
		quoteDialect = tablediff.DialectANSIQuoted
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = tablediff.QuoteIdentifier(c, quoteDialect)
	}

	var sb strings.Builder

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(quoted, ", "))
	sb.WriteString("\nFROM ")
	sb.WriteString(qualifiedTableRef(table, dialect, quotedIdentifiers))

	if len(orderByColumns) > 0 {
		order := make([]string, len(orderByColumns))
		for i, c := range orderByColumns {
			order[i] = tablediff.QuoteIdentifier(c, quoteDialect)
		}

		sb.WriteString("\nORDER BY ")
		sb.WriteString(strings.Join(order, ", "))
	}

	return sb.String()
}

// qualifiedTableRef renders the FROM target. The quoted-identifier toggle
// forces "schema"."table" form; otherwise only the sqlserver dialect brackets
// a schema-qualified reference, and every other case stays unquoted. A table
// without a schema is never wrapped, even with the toggle set.
func qualifiedTableRef(table *tablediff.TableMetadata, dialect tablediff.Dialect, quotedIdentifiers bool) string {
	switch {
	case quotedIdentifiers && table.SchemaName != "":
		return `"` + table.SchemaName + `"."` + table.TableName + `"`
	case dialect == tablediff.DialectSQLServer && table.SchemaName != "":
		return "[" + table.SchemaName + "].[" + table.TableName + "]"
	default:
		return table.QualifiedName()
	}
}

// GenerateComparisonSelects generates the two SELECT statements for the
// source and target tables. Both statements share the same column list and
// the same ORDER BY list, which is what makes the result sets positionally
// comparable.
func GenerateComparisonSelects(source, target *tablediff.TableMetadata, opts Options) (string, string, error) {
	columns := AlignColumns(source, target, opts.UseIntersection)
	if len(columns) == 0 {
		return "", "", fmt.Errorf("%w: source columns %v, target columns %v",
			ErrNoCommonColumns, source.ColumnNames(), target.ColumnNames())
	}

	var orderColumns []string

	if opts.OrderByKeys {
		keys := source.KeyColumns()
		if len(keys) == 0 {
			keys = target.KeyColumns()
		}

		for _, k := range keys {
			if containsName(columns, k) {
				orderColumns = append(orderColumns, k)
			}
		}

		if len(orderColumns) == 0 {
			orderColumns = columns[:1]
		}
	}

	sourceSQL := BuildSelect(source, columns, orderColumns, opts.Dialect, opts.QuotedIdentifiers)
	targetSQL := BuildSelect(target, columns, orderColumns, opts.Dialect, opts.QuotedIdentifiers)

	return sourceSQL, targetSQL, nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
