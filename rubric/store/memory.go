// Package store provides in-memory Catalog and AssignmentStore
// implementations for tests and development.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/warp/payroll-engine/rubric"
)

// =============================================================================
// MEMORY CATALOG
// =============================================================================

type MemoryCatalog struct {
	mu   sync.RWMutex
	defs map[rubric.RubricID]rubric.RubricDefinition
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{defs: make(map[rubric.RubricID]rubric.RubricDefinition)}
}

func (c *MemoryCatalog) Put(def rubric.RubricDefinition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defs[def.ID] = def
}

// Definition returns (nil, nil) for an unknown id per the Catalog contract.
func (c *MemoryCatalog) Definition(_ context.Context, id rubric.RubricID) (*rubric.RubricDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.defs[id]
	if !ok {
		return nil, nil
	}
	return &def, nil
}

func (c *MemoryCatalog) ListDefinitions(_ context.Context) ([]rubric.RubricDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make([]rubric.RubricDefinition, 0, len(c.defs))
	for _, def := range c.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs, nil
}

// =============================================================================
// MEMORY ASSIGNMENT STORE
// =============================================================================

type MemoryAssignments struct {
	mu         sync.RWMutex
	byEmployee map[rubric.EmployeeID][]rubric.Assignment
}

func NewMemoryAssignments() *MemoryAssignments {
	return &MemoryAssignments{byEmployee: make(map[rubric.EmployeeID][]rubric.Assignment)}
}

func (s *MemoryAssignments) Save(_ context.Context, a rubric.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byEmployee[a.EmployeeID]
	for i, existing := range list {
		if existing.ID == a.ID {
			list[i] = a
			return nil
		}
	}
	s.byEmployee[a.EmployeeID] = append(list, a)
	return nil
}

// GetByEmployee returns a copy: callers own what they receive. Memory
// rows are already typed, so no load warnings arise here.
func (s *MemoryAssignments) GetByEmployee(_ context.Context, employeeID rubric.EmployeeID) ([]rubric.Assignment, []rubric.Warning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.byEmployee[employeeID]
	result := make([]rubric.Assignment, len(list))
	copy(result, list)
	return result, nil, nil
}
