package entity

import "github.com/shopspring/decimal"

// Product producto del inventario tal como lo sirve el backend.
// Los tags JSON son contrato de cable: el backend usa snake_case para fechas y
// umbrales, no renombrar.
type Product struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	Category          string          `json:"category"`
	BestBefore        string          `json:"best_before"` // fecha YYYY-MM-DD
	Discontinued      bool            `json:"discontinued"`
	LowStockThreshold int             `json:"low_stock_threshold"`
}

// EffectiveThreshold umbral de stock bajo: el propio del producto si está
// definido, si no el default global.
func (p Product) EffectiveThreshold(globalDefault int) int {
	if p.LowStockThreshold > 0 {
		return p.LowStockThreshold
	}
	return globalDefault
}

// IsLowStock derivado: quantity <= umbral efectivo y el producto no está
// descontinuado.
func (p Product) IsLowStock(globalDefault int) bool {
	return p.Quantity <= p.EffectiveThreshold(globalDefault) && !p.Discontinued
}
