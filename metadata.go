package tablediff

// ColumnMetadata is the unified definition of a single table column.
type ColumnMetadata struct {
	Name         string `json:"name" yaml:"name"`                     // Column name
	DataType     string `json:"data_type" yaml:"data_type"`           // Free-text type label (informational)
	Nullable     bool   `json:"nullable" yaml:"nullable"`             // Is nullable (informational)
	IsPrimaryKey bool   `json:"is_primary_key" yaml:"is_primary_key"` // Fallback primary-key signal
}

// TableMetadata is the unified definition of a single table (schema + columns).
// Values are constructed once by the loader and never mutated afterwards.
type TableMetadata struct {
	TableName         string           `json:"table_name" yaml:"table_name"`
	SchemaName        string           `json:"schema_name" yaml:"schema_name"`
	Columns           []ColumnMetadata `json:"columns" yaml:"columns"`
	PrimaryKeyColumns []string         `json:"primary_key_columns" yaml:"primary_key_columns"`
}

// QualifiedName returns the fully qualified table name (schema.table or table).
func (t *TableMetadata) QualifiedName() string {
	if t.SchemaName != "" {
		return t.SchemaName + "." + t.TableName
	}

	return t.TableName
}

// ColumnNames returns the column names in declared order. Duplicate names in
// the input propagate as duplicates here.
func (t *TableMetadata) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}

	return names
}

// KeyColumns returns the column names used as the ordering key.
//
// Precedence: the explicit primary key list filtered to columns that actually
// exist (explicit order preserved), then columns flagged IsPrimaryKey in
// column order, then the first column, then empty.
func (t *TableMetadata) KeyColumns() []string {
	if len(t.PrimaryKeyColumns) > 0 {
		names := t.ColumnNames()

		keys := make([]string, 0, len(t.PrimaryKeyColumns))
		for _, k := range t.PrimaryKeyColumns {
			if containsName(names, k) {
				keys = append(keys, k)
			}
		}

		return keys
	}

	var flagged []string

	for _, c := range t.Columns {
		if c.IsPrimaryKey {
			flagged = append(flagged, c.Name)
		}
	}

	if len(flagged) > 0 {
		return flagged
	}

	if len(t.Columns) > 0 {
		return []string{t.Columns[0].Name}
	}

	return nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
