// Package queries contains read operations for retrieving system state.
// Each query is a constructor-validated value with a dedicated handler that
// reads through the repository ports and never mutates stored records.
package queries
