package tablediff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseTableMetadata_ObjectForm(t *testing.T) {
	data := []byte(`{
		"table_name": "users",
		"schema_name": "app",
		"columns": [
			{"name": "id", "data_type": "bigint", "nullable": false, "is_primary_key": true},
			{"column_name": "email", "type": "varchar"},
			{"name": " padded "}
		],
		"primary_key": ["id"]
	}`)

	table, err := ParseTableMetadata(data)
	assert.NoError(t, err)
	assert.Equal(t, "users", table.TableName)
	assert.Equal(t, "app", table.SchemaName)
	assert.Equal(t, "app.users", table.QualifiedName())
	assert.Equal(t, 3, len(table.Columns))

	assert.Equal(t, ColumnMetadata{Name: "id", DataType: "bigint", Nullable: false, IsPrimaryKey: true}, table.Columns[0])
	// column_name and type aliases resolve to the canonical fields
	assert.Equal(t, ColumnMetadata{Name: "email", DataType: "varchar", Nullable: true}, table.Columns[1])
	// names are trimmed, nullable defaults to true
	assert.Equal(t, ColumnMetadata{Name: "padded", Nullable: true}, table.Columns[2])

	assert.Equal(t, []string{"id"}, table.PrimaryKeyColumns)
}

func TestParseTableMetadata_AliasPrecedence(t *testing.T) {
	testCases := []struct {
		name          string
		data          string
		expectedName  string
		expectedError bool
	}{
		{
			name:         "table_name wins over table and name",
			data:         `{"table_name": "a", "table": "b", "name": "c", "columns": []}`,
			expectedName: "a",
		},
		{
			name:         "table wins over name",
			data:         `{"table": "b", "name": "c", "columns": []}`,
			expectedName: "b",
		},
		{
			name:         "name as last resort",
			data:         `{"name": "c", "columns": []}`,
			expectedName: "c",
		},
		{
			name:         "empty table_name falls through to table",
			data:         `{"table_name": "", "table": "b", "columns": []}`,
			expectedName: "b",
		},
		{
			name:          "all aliases absent",
			data:          `{"columns": []}`,
			expectedError: true,
		},
		{
			name:          "all aliases empty",
			data:          `{"table_name": "", "table": "", "name": "", "columns": []}`,
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := ParseTableMetadata([]byte(tc.data))
			if tc.expectedError {
				assert.IsError(t, err, ErrTableNameMissing)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedName, table.TableName)
		})
	}
}

func TestParseTableMetadata_ColumnNamesFallback(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		expected []string
	}{
		{
			name:     "column_names only",
			data:     `{"table_name": "t", "column_names": ["a", "b"]}`,
			expected: []string{"a", "b"},
		},
		{
			name:     "empty columns array falls through to column_names",
			data:     `{"table_name": "t", "columns": [], "column_names": ["a"]}`,
			expected: []string{"a"},
		},
		{
			name:     "non-empty columns wins over column_names",
			data:     `{"table_name": "t", "columns": [{"name": "x"}], "column_names": ["a"]}`,
			expected: []string{"x"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := ParseTableMetadata([]byte(tc.data))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, table.ColumnNames())
		})
	}
}

func TestParseTableMetadata_BareArray(t *testing.T) {
	data := []byte(`[{"name": "id", "is_primary_key": true}, {"name": "value"}]`)

	table, err := ParseTableMetadata(data)
	assert.NoError(t, err)
	assert.Equal(t, "table", table.TableName)
	assert.Equal(t, "", table.SchemaName)
	assert.Equal(t, []string{"id", "value"}, table.ColumnNames())
	assert.Equal(t, []string{"id"}, table.KeyColumns())
}

func TestParseTableMetadata_PrimaryKeyAliases(t *testing.T) {
	table, err := ParseTableMetadata([]byte(`{
		"table_name": "t",
		"columns": [{"name": "a"}, {"name": "b"}],
		"primary_key_columns": ["b"]
	}`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"b"}, table.KeyColumns())

	// Empty primary_key falls through to primary_key_columns
	table, err = ParseTableMetadata([]byte(`{
		"table_name": "t",
		"columns": [{"name": "a"}, {"name": "b"}],
		"primary_key": [],
		"primary_key_columns": ["b"]
	}`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"b"}, table.KeyColumns())
}

func TestParseTableMetadata_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		data        string
		expectedErr error
	}{
		{
			name:        "neither columns nor column_names",
			data:        `{"table_name": "t"}`,
			expectedErr: ErrColumnsMissing,
		},
		{
			name:        "column without name aliases",
			data:        `{"table_name": "t", "columns": [{"data_type": "int"}]}`,
			expectedErr: ErrColumnNameMissing,
		},
		{
			name:        "invalid JSON",
			data:        `{`,
			expectedErr: ErrInvalidMetadata,
		},
		{
			name:        "invalid JSON array",
			data:        `[{]`,
			expectedErr: ErrInvalidMetadata,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTableMetadata([]byte(tc.data))
			assert.IsError(t, err, tc.expectedErr)
		})
	}
}

func TestParseTableMetadataYAML(t *testing.T) {
	data := []byte(`
table_name: users
schema: app
columns:
  - name: id
    type: bigint
    is_primary_key: true
  - name: email
    nullable: false
`)

	table, err := ParseTableMetadataYAML(data)
	assert.NoError(t, err)
	assert.Equal(t, "app.users", table.QualifiedName())
	assert.Equal(t, []string{"id", "email"}, table.ColumnNames())
	assert.Equal(t, []string{"id"}, table.KeyColumns())
	assert.Equal(t, "bigint", table.Columns[0].DataType)
	assert.False(t, table.Columns[1].Nullable)
}

func TestParseTableMetadataYAML_BareSequence(t *testing.T) {
	data := []byte(`
- name: id
- name: value
`)

	table, err := ParseTableMetadataYAML(data)
	assert.NoError(t, err)
	assert.Equal(t, "table", table.TableName)
	assert.Equal(t, []string{"id", "value"}, table.ColumnNames())
}

func TestLoadTableMetadata(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "source.json")
	err := os.WriteFile(jsonPath, []byte(`{"table_name": "t", "columns": [{"name": "id"}]}`), 0o644)
	assert.NoError(t, err)

	table, err := LoadTableMetadata(jsonPath)
	assert.NoError(t, err)
	assert.Equal(t, "t", table.TableName)

	yamlPath := filepath.Join(dir, "target.yaml")
	err = os.WriteFile(yamlPath, []byte("table_name: u\ncolumn_names:\n  - id\n"), 0o644)
	assert.NoError(t, err)

	table, err = LoadTableMetadata(yamlPath)
	assert.NoError(t, err)
	assert.Equal(t, "u", table.TableName)
	assert.Equal(t, []string{"id"}, table.ColumnNames())
}

func TestLoadTableMetadata_NotFound(t *testing.T) {
	_, err := LoadTableMetadata(filepath.Join(t.TempDir(), "missing.json"))
	assert.IsError(t, err, ErrMetadataNotFound)
	assert.Contains(t, err.Error(), "missing.json")
}
