// Package ports defines the repository interfaces the use cases depend on.
// The adapters under internal/adapters/out implement them, which keeps the
// application layer free of storage details and lets tests substitute mocks.
package ports
