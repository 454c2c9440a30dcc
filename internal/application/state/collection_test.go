package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

func productCollection() *state.Collection[entity.Product, int] {
	c := state.NewCollection(func(p entity.Product) int { return p.ID })
	c.Set([]entity.Product{
		{ID: 1, Name: "Arroz 1kg", Quantity: 10},
		{ID: 2, Name: "Leche 1L", Quantity: 5},
		{ID: 3, Name: "Aceite 900ml", Quantity: 8},
	})
	return c
}

func TestCollection_ReplacePreservaElOrden(t *testing.T) {
	c := productCollection()

	c.Replace(entity.Product{ID: 2, Name: "Leche entera 1L", Quantity: 7})

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID},
		"el update sustituye in situ sin reordenar")
	assert.Equal(t, "Leche entera 1L", items[1].Name)
}

func TestCollection_ReplaceInexistente_EsNoOp(t *testing.T) {
	c := productCollection()
	c.Replace(entity.Product{ID: 99, Name: "fantasma"})
	assert.Equal(t, 3, c.Len())
	_, found := c.Find(99)
	assert.False(t, found)
}

func TestCollection_RemoveYFind(t *testing.T) {
	c := productCollection()

	c.Remove(2)
	assert.Equal(t, 2, c.Len())
	_, found := c.Find(2)
	assert.False(t, found)

	p, found := c.Find(3)
	require.True(t, found)
	assert.Equal(t, "Aceite 900ml", p.Name)
}

func TestCollection_PatchAplicaATodos(t *testing.T) {
	c := productCollection()

	c.Patch(func(p entity.Product) entity.Product {
		if p.ID == 1 {
			p.Quantity -= 4
		}
		return p
	})

	p, _ := c.Find(1)
	assert.Equal(t, 6, p.Quantity)
	other, _ := c.Find(2)
	assert.Equal(t, 5, other.Quantity, "los no parchados quedan igual")
}

func TestCollection_PrependInsertaAlInicio(t *testing.T) {
	c := state.NewCollection(func(e entity.AuditLogEntry) int64 { return e.ID })
	c.Set([]entity.AuditLogEntry{{ID: 1, Action: "old"}})

	c.Prepend(entity.AuditLogEntry{ID: 2, Action: "new"})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "new", items[0].Action, "lo más reciente va primero")
}

func TestCollection_ItemsDevuelveCopia(t *testing.T) {
	c := productCollection()
	items := c.Items()
	items[0].Name = "mutado"

	original, _ := c.Find(1)
	assert.Equal(t, "Arroz 1kg", original.Name, "mutar el snapshot no toca la caché")
}
