package entity

import "github.com/shopspring/decimal"

// Estados de una venta.
const (
	SaleStatusPending   = "Pending"
	SaleStatusCompleted = "Completed"
	SaleStatusCancelled = "Cancelled"
)

// SaleItem línea de una venta: snapshot del producto al momento de vender.
// Total ya viene neto de Discount.
type SaleItem struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	Discount    decimal.Decimal `json:"discount"`
}

// Sale venta con líneas embebidas. El total agregado se calcula en el cliente
// antes de enviar; en lecturas manda lo que responda el servidor.
type Sale struct {
	SaleID      int             `json:"saleId"`
	Customer    int             `json:"customer"` // id del cliente
	Items       []SaleItem      `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Date        string          `json:"date"`
	SalesPerson int             `json:"salesPerson"` // id del usuario vendedor
	Status      string          `json:"status"`
}
