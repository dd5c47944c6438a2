package tablediff

import "errors"

// Common errors used throughout the tablediff package
var (
	// ErrMetadataNotFound indicates a metadata file path does not exist.
	ErrMetadataNotFound = errors.New("metadata file not found")
	// ErrInvalidMetadata indicates a metadata document could not be decoded.
	ErrInvalidMetadata = errors.New("failed to decode metadata document")
	// ErrTableNameMissing indicates the table name field is absent or empty.
	ErrTableNameMissing = errors.New("table must have 'table_name', 'table', or 'name'")
	// ErrColumnNameMissing indicates a column entry lacks both name aliases.
	ErrColumnNameMissing = errors.New("column must have 'name' or 'column_name'")
	// ErrColumnsMissing indicates the document has neither columns source.
	ErrColumnsMissing = errors.New("metadata must contain 'columns' or 'column_names'")

	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
)
