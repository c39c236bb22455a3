package role

import "strings"

// Role is a member of the closed role set understood by the redirect engine.
type Role string

const (
	// SuperAdmin has full platform access.
	SuperAdmin Role = "SUPER_ADMIN"
	// Admin has administrative dashboard access.
	Admin Role = "ADMIN"
	// Technician has repair-queue access.
	Technician Role = "TECHNICIAN"
	// Customer is the lowest-privilege role.
	Customer Role = "CUSTOMER"
)

// Unknown is the zero role; it never maps to a destination.
const Unknown Role = ""

// Normalize canonicalizes a raw role string: surrounding whitespace is
// stripped and the name is upper-cased. Normalize does not validate
// membership in the closed set; use [Registry.Destination] for that.
func Normalize(raw string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(raw)))
}

func (r Role) String() string {
	return string(r)
}
