// Package role models the closed role set and its destination mapping.
//
// The [Registry] is populated during engine construction and then frozen.
// After Freeze, [Registry.Resolve] is a pure, total function: every
// registered role maps to exactly one path and everything else maps to the
// fallback, so destination lookup can never fail at resolution time.
//
// # What this package must NOT do
//
//   - Perform I/O or hold references to stores.
//   - Accept registrations after Freeze.
package role
