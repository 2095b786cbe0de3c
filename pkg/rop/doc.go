// Package rop holds Result[T], the two-rail value used by every pipeline in
// this module: a Result is either a success carrying a value or a failure
// carrying the error that stopped the pipeline.
//
// Combinators live in sub-packages:
// - solo: free functions over a single Result (Switch, Map, Finally, ...)
// - chain: fluent wrapper over solo for step-by-step composition
package rop
