package tablediff

// Dialect represents supported SQL dialects for identifier quoting
// This type is shared across all packages
type Dialect string

const (
	DialectANSI      Dialect = "ansi"
	DialectSQLServer Dialect = "sqlserver"
	DialectMSSQL     Dialect = "mssql"
	DialectMySQL     Dialect = "mysql"

	// DialectANSIQuoted is an internal rendering mode reachable only through
	// the quoted-identifiers toggle, never through the public dialect list.
	DialectANSIQuoted Dialect = "ansi_quoted"
)

// PublicDialects lists the dialect names accepted at the CLI and config boundary.
var PublicDialects = []Dialect{DialectANSI, DialectSQLServer, DialectMSSQL, DialectMySQL}

// IsPublicDialect reports whether d is one of the user-facing dialect names.
func IsPublicDialect(d Dialect) bool {
	for _, candidate := range PublicDialects {
		if d == candidate {
			return true
		}
	}

	return false
}

// QuoteIdentifier wraps an identifier per dialect. Unrecognized dialects pass
// the identifier through unchanged rather than failing.
func QuoteIdentifier(name string, dialect Dialect) string {
	switch dialect {
	case DialectANSIQuoted:
		return `"` + name + `"`
	case DialectSQLServer, DialectMSSQL:
		return "[" + name + "]"
	case DialectMySQL:
		return "`" + name + "`"
	default:
		return name
	}
}
