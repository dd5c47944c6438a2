package tablediff

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestQuoteIdentifier(t *testing.T) {
	testCases := []struct {
		name     string
		dialect  Dialect
		expected string
	}{
		{name: "ansi passes through", dialect: DialectANSI, expected: "order"},
		{name: "ansi_quoted wraps in double quotes", dialect: DialectANSIQuoted, expected: `"order"`},
		{name: "sqlserver wraps in brackets", dialect: DialectSQLServer, expected: "[order]"},
		{name: "mssql wraps in brackets", dialect: DialectMSSQL, expected: "[order]"},
		{name: "mysql wraps in backticks", dialect: DialectMySQL, expected: "`order`"},
		{name: "unknown dialect passes through", dialect: Dialect("oracle"), expected: "order"},
		{name: "empty dialect passes through", dialect: Dialect(""), expected: "order"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, QuoteIdentifier("order", tc.dialect))
		})
	}
}

func TestIsPublicDialect(t *testing.T) {
	for _, d := range PublicDialects {
		assert.True(t, IsPublicDialect(d))
	}

	assert.False(t, IsPublicDialect(DialectANSIQuoted))
	assert.False(t, IsPublicDialect(Dialect("oracle")))
	assert.False(t, IsPublicDialect(Dialect("")))
}
