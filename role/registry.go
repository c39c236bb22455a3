package role

import (
	"errors"
	"sort"
	"strings"
)

// ErrFrozen is returned when registering into a frozen registry.
var ErrFrozen = errors.New("role registry is frozen")

// ErrDuplicateRole is returned when a role is registered twice.
var ErrDuplicateRole = errors.New("role already registered")

// ErrInvalidPath is returned when a destination path is not absolute.
var ErrInvalidPath = errors.New("destination path must be absolute")

// ErrEmptyRole is returned when registering an empty role name.
var ErrEmptyRole = errors.New("role name must not be empty")

// Registry holds the closed role set and its destination mapping. It is
// populated during engine construction and then frozen; after Freeze the
// mapping is a pure, total function over role values: every registered
// role maps to exactly one path and everything else maps to the fallback.
type Registry struct {
	routes   map[Role]string
	fallback string
	frozen   bool
}

// NewRegistry creates an empty registry with the given fallback path.
func NewRegistry(fallback string) (*Registry, error) {
	if !strings.HasPrefix(fallback, "/") {
		return nil, ErrInvalidPath
	}
	return &Registry{
		routes:   make(map[Role]string),
		fallback: fallback,
	}, nil
}

// Register maps a role to a destination path. Registration is rejected
// after Freeze.
func (r *Registry) Register(role Role, path string) error {
	if r.frozen {
		return ErrFrozen
	}
	if role == Unknown {
		return ErrEmptyRole
	}
	if !strings.HasPrefix(path, "/") {
		return ErrInvalidPath
	}
	if _, exists := r.routes[role]; exists {
		return ErrDuplicateRole
	}
	r.routes[role] = path
	return nil
}

// Freeze seals the registry. Subsequent Register calls fail.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registry has been sealed.
func (r *Registry) Frozen() bool {
	return r != nil && r.frozen
}

// Destination returns the path for a registered role. ok is false for
// unknown or empty roles.
func (r *Registry) Destination(role Role) (string, bool) {
	if r == nil {
		return "", false
	}
	path, ok := r.routes[role]
	return path, ok
}

// Resolve is the total form of [Registry.Destination]: unknown and empty
// roles yield the fallback path.
func (r *Registry) Resolve(role Role) string {
	if path, ok := r.Destination(role); ok {
		return path
	}
	return r.Fallback()
}

// Fallback returns the lowest-privilege destination.
func (r *Registry) Fallback() string {
	if r == nil {
		return "/"
	}
	return r.fallback
}

// Roles returns the registered role set in sorted order.
func (r *Registry) Roles() []Role {
	if r == nil {
		return nil
	}
	out := make([]Role, 0, len(r.routes))
	for role := range r.routes {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
