package domain

import "fmt"

// ValidationError marks a record that cannot participate in a run. The
// pipeline treats these as warnings: the record is dropped, the run goes on.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: %s %s", e.Field, e.Message)
}

// ConfigurationError marks an unusable engine configuration. Unlike record
// problems these are fatal: no schedule is produced.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Message)
}
