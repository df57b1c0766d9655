package seeder

import (
	"testing"

	"github.com/Rana718/distria-seed/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertionOrderRespectsForeignKeys(t *testing.T) {
	g := NewDependencyGraph()
	for table, deps := range schema.Dependencies {
		g.AddTable(table, deps...)
	}

	order, err := g.BuildInsertionOrder()
	require.NoError(t, err)
	require.Len(t, order, len(schema.Dependencies))
	assert.Equal(t, order, g.GetOrder())

	position := make(map[string]int)
	for i, table := range order {
		position[table] = i
	}
	for table, deps := range schema.Dependencies {
		for _, dep := range deps {
			assert.Less(t, position[dep], position[table], "%s must come before %s", dep, table)
		}
	}
}

func TestInsertionOrderIsStable(t *testing.T) {
	build := func() []string {
		g := NewDependencyGraph()
		for table, deps := range schema.Dependencies {
			g.AddTable(table, deps...)
		}
		order, err := g.BuildInsertionOrder()
		require.NoError(t, err)
		return order
	}

	first := build()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, build())
	}
}

func TestTruncationOrderIsReversed(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable("pedidos", "clientes")
	g.AddTable("clientes")
	g.AddTable("items_pedido", "pedidos")

	order, err := g.TruncationOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"items_pedido", "pedidos", "clientes"}, order)
}

func TestSelfReferenceIgnored(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable("usuarios", "usuarios")

	order, err := g.BuildInsertionOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"usuarios"}, order)
}

func TestCycleDetected(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable("a", "b")
	g.AddTable("b", "a")

	_, err := g.BuildInsertionOrder()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular dependency")
}
