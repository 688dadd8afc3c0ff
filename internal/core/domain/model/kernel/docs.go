// Package kernel provides the domain primitives shared by the order and user
// aggregates. Currently that is UUID, the identifier value object wrapping
// github.com/google/uuid. Primitives are immutable and safe for concurrent use.
package kernel
