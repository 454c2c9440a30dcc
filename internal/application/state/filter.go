package state

import (
	"strings"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// SaleFilter criterios de la vista de historial de ventas. Campos vacíos no
// filtran. Las fechas son cadenas YYYY-MM-DD, comparables lexicográficamente.
type SaleFilter struct {
	DateFrom string
	DateTo   string
	Customer string // substring del nombre del cliente, sin distinguir mayúsculas
}

// FilterSales aplica el filtro sobre vistas ya normalizadas. nameOf resuelve el
// nombre del cliente por id (la venta solo lleva el id); puede ser nil si no se
// filtra por cliente.
func FilterSales(views []SaleView, f SaleFilter, nameOf func(int) string) []SaleView {
	needle := strings.ToLower(strings.TrimSpace(f.Customer))
	out := make([]SaleView, 0, len(views))
	for _, v := range views {
		if f.DateFrom != "" && v.Date < f.DateFrom {
			continue
		}
		if f.DateTo != "" && v.Date > f.DateTo {
			continue
		}
		if needle != "" {
			name := ""
			if nameOf != nil {
				name = nameOf(v.Customer)
			}
			if !strings.Contains(strings.ToLower(name), needle) {
				continue
			}
		}
		out = append(out, v)
	}
	return out
}

// FilterProducts búsqueda por substring sobre nombre, SKU y categoría.
func FilterProducts(products []entity.Product, query string) []entity.Product {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return products
	}
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.SKU), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterCustomers búsqueda por substring sobre nombre, email y teléfono.
func FilterCustomers(customers []entity.Customer, query string) []entity.Customer {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return customers
	}
	out := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(strings.ToLower(c.Phone), needle) {
			out = append(out, c)
		}
	}
	return out
}
