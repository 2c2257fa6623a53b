// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store interfaces,
// facilitating consistent testing across the codebase. Instead of defining
// inline mocks in individual test files, these standardized implementations
// can be reused. Each mock keeps its data in memory and honors the store
// error contract (not-found and duplicate sentinels), and every method can
// be overridden per test through its function field.
package mocks
