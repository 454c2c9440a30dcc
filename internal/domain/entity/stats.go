package entity

import "github.com/shopspring/decimal"

// LowStockItem resumen de producto con stock bajo en el widget del overview.
type LowStockItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	SKU      string `json:"sku"`
}

// DashboardStats contadores agregados de /dashboard-stats/.
type DashboardStats struct {
	TotalItems           int             `json:"totalItems"`
	TotalSales           int             `json:"totalSales"`
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	ActiveSalesPersonnel int             `json:"activeSalesPersonnel"`
	LowStockItems        []LowStockItem  `json:"lowStockItems"`
}
