// Package internal contains helper utilities that are intentionally private
// to goRedirect, including resolution ID generation.
//
// # Sub-packages
//
//   - flows: pure-function flow orchestrators for Engine operations
//
// # What this package must NOT do
//
//   - Export types that appear in the public goRedirect API.
//   - Be imported by any package outside the goRedirect module.
package internal
