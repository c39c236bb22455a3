package role

import (
	"errors"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r, err := NewRegistry("/dashboard")
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	routes := map[Role]string{
		SuperAdmin: "/admin",
		Admin:      "/admin",
		Technician: "/technician",
		Customer:   "/dashboard",
	}
	for role, path := range routes {
		if err := r.Register(role, path); err != nil {
			t.Fatalf("Register(%s) failed: %v", role, err)
		}
	}
	r.Freeze()
	return r
}

func TestRegistryResolveIsTotal(t *testing.T) {
	r := newTestRegistry(t)

	cases := map[Role]string{
		SuperAdmin:     "/admin",
		Admin:          "/admin",
		Technician:     "/technician",
		Customer:       "/dashboard",
		Unknown:        "/dashboard",
		Role("VENDOR"): "/dashboard",
	}
	for role, want := range cases {
		if got := r.Resolve(role); got != want {
			t.Fatalf("Resolve(%q): expected %q, got %q", role, want, got)
		}
	}
}

func TestRegistryDestinationMembership(t *testing.T) {
	r := newTestRegistry(t)

	if _, ok := r.Destination(Role("VENDOR")); ok {
		t.Fatal("unregistered role must not have a destination")
	}
	if _, ok := r.Destination(Unknown); ok {
		t.Fatal("empty role must not have a destination")
	}
	if path, ok := r.Destination(Technician); !ok || path != "/technician" {
		t.Fatalf("Destination(TECHNICIAN) = %q, %v", path, ok)
	}
}

func TestRegistryRegisterRejections(t *testing.T) {
	r, err := NewRegistry("/dashboard")
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if err := r.Register(Unknown, "/x"); !errors.Is(err, ErrEmptyRole) {
		t.Fatalf("expected ErrEmptyRole, got %v", err)
	}
	if err := r.Register(Admin, "admin"); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
	if err := r.Register(Admin, "/admin"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := r.Register(Admin, "/other"); !errors.Is(err, ErrDuplicateRole) {
		t.Fatalf("expected ErrDuplicateRole, got %v", err)
	}

	r.Freeze()
	if err := r.Register(Customer, "/dashboard"); !errors.Is(err, ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
}

func TestRegistryRejectsRelativeFallback(t *testing.T) {
	if _, err := NewRegistry("dashboard"); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]Role{
		"admin":        Admin,
		" ADMIN ":      Admin,
		"Technician":   Technician,
		"":             Unknown,
		"  ":           Unknown,
		"super_admin":  SuperAdmin,
		"customer\n":   Customer,
		"unrecognized": Role("UNRECOGNIZED"),
	}
	for raw, want := range cases {
		if got := Normalize(raw); got != want {
			t.Fatalf("Normalize(%q): expected %q, got %q", raw, want, got)
		}
	}
}

func TestRegistryRolesSorted(t *testing.T) {
	r := newTestRegistry(t)

	roles := r.Roles()
	if len(roles) != 4 {
		t.Fatalf("expected 4 roles, got %d", len(roles))
	}
	for i := 1; i < len(roles); i++ {
		if roles[i-1] >= roles[i] {
			t.Fatalf("roles not sorted: %v", roles)
		}
	}
}
