//go:build !debug

package database

// logDebugf compiles to nothing without the debug build tag.
func logDebugf(string, ...interface{}) {}
