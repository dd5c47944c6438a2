package tablediff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// tableDocument is the raw on-disk shape of a table metadata document.
// Every field alias is captured so precedence can be resolved explicitly
// rather than relying on decoder behavior.
type tableDocument struct {
	TableName         string            `json:"table_name" yaml:"table_name"`
	Table             string            `json:"table" yaml:"table"`
	Name              string            `json:"name" yaml:"name"`
	SchemaName        string            `json:"schema_name" yaml:"schema_name"`
	Schema            string            `json:"schema" yaml:"schema"`
	Columns           *[]columnDocument `json:"columns" yaml:"columns"`
	ColumnNames       *[]string         `json:"column_names" yaml:"column_names"`
	PrimaryKey        []string          `json:"primary_key" yaml:"primary_key"`
	PrimaryKeyColumns []string          `json:"primary_key_columns" yaml:"primary_key_columns"`
}

// columnDocument is the raw on-disk shape of a single column entry.
type columnDocument struct {
	Name         string `json:"name" yaml:"name"`
	ColumnName   string `json:"column_name" yaml:"column_name"`
	DataType     string `json:"data_type" yaml:"data_type"`
	Type         string `json:"type" yaml:"type"`
	Nullable     *bool  `json:"nullable" yaml:"nullable"`
	IsPrimaryKey bool   `json:"is_primary_key" yaml:"is_primary_key"`
}

// LoadTableMetadata loads table metadata from a JSON or YAML file.
// Files with a .yaml/.yml extension are decoded as YAML, everything else as JSON.
func LoadTableMetadata(path string) (*TableMetadata, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMetadataNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseTableMetadataYAML(data)
	default:
		return ParseTableMetadata(data)
	}
}

// ParseTableMetadata decodes a JSON metadata document. The root may be an
// object, or a bare array treated as the column list of an anonymous table
// named "table".
func ParseTableMetadata(data []byte) (*TableMetadata, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var cols []columnDocument
		if err := json.Unmarshal(trimmed, &cols); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidMetadata, err)
		}

		return tableFromDocument(tableDocument{TableName: "table", Columns: &cols})
	}

	var doc tableDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMetadata, err)
	}

	if doc.Columns == nil && doc.ColumnNames == nil {
		return nil, ErrColumnsMissing
	}

	return tableFromDocument(doc)
}

// ParseTableMetadataYAML decodes a YAML metadata document, accepting the same
// two root shapes as ParseTableMetadata.
func ParseTableMetadataYAML(data []byte) (*TableMetadata, error) {
	var cols []columnDocument
	if err := yaml.Unmarshal(data, &cols); err == nil {
		return tableFromDocument(tableDocument{TableName: "table", Columns: &cols})
	}

	var doc tableDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMetadata, err)
	}

	if doc.Columns == nil && doc.ColumnNames == nil {
		return nil, ErrColumnsMissing
	}

	return tableFromDocument(doc)
}

func tableFromDocument(doc tableDocument) (*TableMetadata, error) {
	tableName := firstNonEmpty(doc.TableName, doc.Table, doc.Name)
	if tableName == "" {
		return nil, ErrTableNameMissing
	}

	var cols []columnDocument
	if doc.Columns != nil {
		cols = *doc.Columns
	}

	if len(cols) == 0 && doc.ColumnNames != nil {
		cols = make([]columnDocument, len(*doc.ColumnNames))
		for i, n := range *doc.ColumnNames {
			cols[i] = columnDocument{Name: n}
		}
	}

	columns := make([]ColumnMetadata, 0, len(cols))

	for _, c := range cols {
		column, err := columnFromDocument(c)
		if err != nil {
			return nil, err
		}

		columns = append(columns, column)
	}

	primaryKey := doc.PrimaryKey
	if len(primaryKey) == 0 {
		primaryKey = doc.PrimaryKeyColumns
	}

	return &TableMetadata{
		TableName:         strings.TrimSpace(tableName),
		SchemaName:        firstNonEmpty(doc.SchemaName, doc.Schema),
		Columns:           columns,
		PrimaryKeyColumns: primaryKey,
	}, nil
}

func columnFromDocument(doc columnDocument) (ColumnMetadata, error) {
	name := firstNonEmpty(doc.Name, doc.ColumnName)
	if name == "" {
		return ColumnMetadata{}, ErrColumnNameMissing
	}

	nullable := true
	if doc.Nullable != nil {
		nullable = *doc.Nullable
	}

	return ColumnMetadata{
		Name:         strings.TrimSpace(name),
		DataType:     firstNonEmpty(doc.DataType, doc.Type),
		Nullable:     nullable,
		IsPrimaryKey: doc.IsPrimaryKey,
	}, nil
}

// firstNonEmpty returns the first non-empty candidate, implementing the
// "first present field wins" alias precedence.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}

	return ""
}
