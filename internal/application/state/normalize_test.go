package state_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	out, _ := decimal.NewFromString(s)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeSale_SinLineas(t *testing.T) {
	v := state.NormalizeSale(entity.Sale{SaleID: 1})

	assert.Equal(t, "Unknown Product", v.Product)
	assert.Zero(t, v.Quantity)
	assert.True(t, v.UnitPrice.IsZero())
	assert.True(t, v.Discount.IsZero())
}

func TestNormalizeSale_UnaLinea(t *testing.T) {
	v := state.NormalizeSale(entity.Sale{
		SaleID: 2,
		Items: []entity.SaleItem{
			{ProductName: "Arroz 1kg", Quantity: 3, UnitPrice: d("2.50"), Discount: d("0.75")},
		},
	})

	assert.Equal(t, "Arroz 1kg", v.Product)
	assert.Equal(t, 3, v.Quantity)
	assert.True(t, v.UnitPrice.Equal(d("2.50")))
	assert.True(t, v.Discount.Equal(d("0.75")))
}

func TestNormalizeSale_MultilineaSumaCantidadesYDescuentos(t *testing.T) {
	v := state.NormalizeSale(entity.Sale{
		Items: []entity.SaleItem{
			{ProductName: "Arroz 1kg", Quantity: 2, UnitPrice: d("2.50"), Discount: d("0.50")},
			{ProductName: "Leche 1L", Quantity: 4, UnitPrice: d("1.80"), Discount: d("0.72")},
		},
	})

	// El nombre mostrado es el de la primera línea; el precio unitario también.
	assert.Equal(t, "Arroz 1kg", v.Product)
	assert.Equal(t, 6, v.Quantity)
	assert.True(t, v.UnitPrice.Equal(d("2.50")))
	assert.True(t, v.Discount.Equal(d("1.22")))
}

func TestNormalizeSale_PrimeraLineaSinNombre(t *testing.T) {
	v := state.NormalizeSale(entity.Sale{
		Items: []entity.SaleItem{
			{ProductName: "", Quantity: 1},
			{ProductName: "Leche 1L", Quantity: 1},
		},
	})
	assert.Equal(t, "Multiple Items", v.Product)
}

func TestNormalizeSales_PreservaOrden(t *testing.T) {
	views := state.NormalizeSales([]entity.Sale{
		{SaleID: 9, Items: []entity.SaleItem{{ProductName: "A", Quantity: 1}}},
		{SaleID: 3, Items: []entity.SaleItem{{ProductName: "B", Quantity: 1}}},
	})

	assert.Equal(t, 9, views[0].SaleID)
	assert.Equal(t, 3, views[1].SaleID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeCustomer_HeuristicasDePresentacion(t *testing.T) {
	v := state.NormalizeCustomer(entity.Customer{
		CustomerID:     7,
		Name:           "María Pérez",
		TotalPurchases: 4,
		CreatedAt:      "2026-01-15",
	})

	assert.Equal(t, "Active", v.Status, "todo cliente se muestra activo")
	assert.True(t, v.TotalSpent.Equal(d("40")), "gasto estimado = compras × 10")
	assert.Equal(t, "2026-01-15", v.JoinDate)
	assert.Equal(t, "2026-01-15", v.LastPurchase)
}

func TestNormalizeCustomer_SinCompras(t *testing.T) {
	v := state.NormalizeCustomer(entity.Customer{CustomerID: 1})
	assert.True(t, v.TotalSpent.IsZero())
	assert.Equal(t, "Active", v.Status)
}
