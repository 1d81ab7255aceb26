/*
catalog.go - Interfaces to the engine's external collaborators

PURPOSE:
  The engine consumes two capabilities from the surrounding application:
  a read-only rubric catalog and a source of per-employee assignments.
  Both are interfaces so the data layer can be SQLite, PostgreSQL, or
  in-memory (see store/memory.go for the latter).

CONTRACTS:
  Catalog.Definition returns (nil, nil) for an unknown id - a dangling
  reference is a data-quality condition, not an error.

  AssignmentStore.GetByEmployee returns rows already filtered to one
  employee but NOT pre-filtered by active flag or validity window; that
  filtering is the engine's job. Stored fields the implementation could
  not decode come back unset, each reported as a Warning so the operator
  can see the degraded record.
*/
package rubric

import "context"

// Catalog is the read-only rubric definition lookup.
type Catalog interface {
	// Definition returns the catalog entry for the id, or (nil, nil)
	// when the id is unknown.
	Definition(ctx context.Context, id RubricID) (*RubricDefinition, error)

	// ListDefinitions returns all catalog entries.
	ListDefinitions(ctx context.Context) ([]RubricDefinition, error)
}

// AssignmentStore supplies employee-rubric assignments.
type AssignmentStore interface {
	Save(ctx context.Context, a Assignment) error

	// GetByEmployee returns ALL assignments for an employee, including
	// inactive and expired ones. Warnings flag stored fields that could
	// not be decoded; those fields are left unset on the assignment.
	GetByEmployee(ctx context.Context, employeeID EmployeeID) ([]Assignment, []Warning, error)
}
