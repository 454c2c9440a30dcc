package state

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// Multiplicador del gasto estimado de un cliente. totalPurchases × 10 es una
// métrica de vitrina explícitamente aproximada, no un cálculo financiero; se
// conserva tal cual hasta que el backend exponga el agregado real.
const estimatedSpendMultiplier = 10

// SaleView venta normalizada para mostrar: la venta trae solo items
// estructurados y la vista necesita campos de conveniencia derivados.
type SaleView struct {
	entity.Sale
	Product   string          // nombre del producto principal
	Quantity  int             // suma de cantidades de todas las líneas
	UnitPrice decimal.Decimal // precio de la primera línea
	Discount  decimal.Decimal // suma de descuentos de todas las líneas
}

// NormalizeSale deriva los campos de display de una venta:
//   - Product: nombre de la primera línea; "Multiple Items" si hay varias y
//     la primera no distingue nombre; "Unknown Product" sin líneas.
//   - Quantity: Σ cantidades. UnitPrice: precio de la primera línea.
//   - Discount: Σ descuentos.
func NormalizeSale(s entity.Sale) SaleView {
	v := SaleView{Sale: s, UnitPrice: decimal.Zero, Discount: decimal.Zero}
	if len(s.Items) == 0 {
		v.Product = "Unknown Product"
		return v
	}
	if name := s.Items[0].ProductName; name != "" {
		v.Product = name
	} else {
		v.Product = "Multiple Items"
	}
	v.UnitPrice = s.Items[0].UnitPrice
	for _, it := range s.Items {
		v.Quantity += it.Quantity
		v.Discount = v.Discount.Add(it.Discount)
	}
	return v
}

// NormalizeSales aplica NormalizeSale preservando el orden.
func NormalizeSales(sales []entity.Sale) []SaleView {
	out := make([]SaleView, 0, len(sales))
	for _, s := range sales {
		out = append(out, NormalizeSale(s))
	}
	return out
}

// CustomerView cliente normalizado para mostrar.
type CustomerView struct {
	entity.Customer
	Status       string          // siempre "Active": no hay flag de actividad en el backend
	TotalSpent   decimal.Decimal // estimado: purchases × multiplicador fijo
	JoinDate     string
	LastPurchase string
}

// NormalizeCustomer añade el estado de display (política actual: todo cliente
// es "Active") y el gasto de vida estimado. Ambos son heurísticas de
// presentación heredadas; no "corregirlas" en silencio.
func NormalizeCustomer(c entity.Customer) CustomerView {
	return CustomerView{
		Customer:     c,
		Status:       "Active",
		TotalSpent:   decimal.NewFromInt(int64(c.TotalPurchases * estimatedSpendMultiplier)),
		JoinDate:     c.CreatedAt,
		LastPurchase: c.CreatedAt,
	}
}

// NormalizeCustomers aplica NormalizeCustomer preservando el orden.
func NormalizeCustomers(customers []entity.Customer) []CustomerView {
	out := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		out = append(out, NormalizeCustomer(c))
	}
	return out
}
