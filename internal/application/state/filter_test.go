package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

func saleViewOn(date string, customer int) state.SaleView {
	return state.SaleView{Sale: entity.Sale{Date: date, Customer: customer}}
}

func TestFilterSales_RangoDeFechas(t *testing.T) {
	views := []state.SaleView{
		saleViewOn("2026-01-10", 1),
		saleViewOn("2026-02-15", 1),
		saleViewOn("2026-03-20", 1),
	}

	got := state.FilterSales(views, state.SaleFilter{DateFrom: "2026-02-01", DateTo: "2026-02-28"}, nil)
	assert.Len(t, got, 1)
	assert.Equal(t, "2026-02-15", got[0].Date)

	got = state.FilterSales(views, state.SaleFilter{DateFrom: "2026-02-01"}, nil)
	assert.Len(t, got, 2, "sin fecha final el rango queda abierto hacia adelante")
}

func TestFilterSales_PorNombreDeCliente(t *testing.T) {
	views := []state.SaleView{
		saleViewOn("2026-01-10", 1),
		saleViewOn("2026-01-11", 2),
	}
	names := map[int]string{1: "María Pérez", 2: "Comedor El Buen Sabor"}
	nameOf := func(id int) string { return names[id] }

	got := state.FilterSales(views, state.SaleFilter{Customer: "maría"}, nameOf)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Customer)

	got = state.FilterSales(views, state.SaleFilter{Customer: "nadie"}, nameOf)
	assert.Empty(t, got)
}

func TestFilterSales_SinCriterios_DevuelveTodo(t *testing.T) {
	views := []state.SaleView{saleViewOn("2026-01-10", 1), saleViewOn("2026-01-11", 2)}
	assert.Len(t, state.FilterSales(views, state.SaleFilter{}, nil), 2)
}

func TestFilterProducts_NombreSKUyCategoria(t *testing.T) {
	products := []entity.Product{
		{ID: 1, Name: "Arroz 1kg", SKU: "GR-001", Category: "Granos"},
		{ID: 2, Name: "Leche entera", SKU: "LA-021", Category: "Lácteos"},
	}

	assert.Len(t, state.FilterProducts(products, "arroz"), 1)
	assert.Len(t, state.FilterProducts(products, "la-021"), 1)
	assert.Len(t, state.FilterProducts(products, "granos"), 1)
	assert.Len(t, state.FilterProducts(products, ""), 2, "consulta vacía no filtra")
	assert.Empty(t, state.FilterProducts(products, "pan"))
}

func TestFilterCustomers_NombreEmailyTelefono(t *testing.T) {
	customers := []entity.Customer{
		{CustomerID: 1, Name: "María Pérez", Email: "maria@example.com", Phone: "555-0101"},
		{CustomerID: 2, Name: "Comedor El Buen Sabor", Email: "compras@buensabor.example", Phone: "555-0188"},
	}

	assert.Len(t, state.FilterCustomers(customers, "pérez"), 1)
	assert.Len(t, state.FilterCustomers(customers, "buensabor"), 1)
	assert.Len(t, state.FilterCustomers(customers, "0188"), 1)
	assert.Len(t, state.FilterCustomers(customers, ""), 2)
}
