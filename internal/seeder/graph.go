package seeder

import (
	"fmt"
	"sort"
)

// DependencyGraph orders tables so every foreign key target comes first.
type DependencyGraph struct {
	deps  map[string][]string
	order []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

func (g *DependencyGraph) AddTable(name string, dependsOn ...string) {
	g.deps[name] = append(g.deps[name], dependsOn...)
}

// BuildInsertionOrder returns a topological order. Ties are broken by table
// name so the result is stable across runs.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		temp[tableName] = true
		deps := append([]string(nil), g.deps[tableName]...)
		sort.Strings(deps)
		for _, dep := range deps {
			if dep != tableName { // Skip self-references
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	names := make([]string, 0, len(g.deps))
	for name := range g.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, tableName := range names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	return order, nil
}

// TruncationOrder is the insertion order reversed: dependents first.
func (g *DependencyGraph) TruncationOrder() ([]string, error) {
	order, err := g.BuildInsertionOrder()
	if err != nil {
		return nil, err
	}
	reversed := make([]string, len(order))
	for i, name := range order {
		reversed[len(order)-1-i] = name
	}
	return reversed, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}
