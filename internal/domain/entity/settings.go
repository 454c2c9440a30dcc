package entity

import "github.com/shopspring/decimal"

// DiscountRule regla de descuento configurable. Las reglas de porcentaje
// activas participan en el cálculo de promoción vigente de una venta.
type DiscountRule struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"` // percentage | fixed
	Value    decimal.Decimal `json:"value"`
	IsActive bool            `json:"isActive"`
}

// WorkingHours horario de atención por día.
type WorkingHours struct {
	Day       string `json:"day"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// Feature flag de funcionalidad.
type Feature struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// SystemSettings blob completo de configuración persistida. Se lee/escribe por
// /system-settings/ y se espeja como un único objeto serializado en el
// almacenamiento local, bajo su propia clave.
type SystemSettings struct {
	CurrencySymbol    string          `json:"currencySymbol"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	SessionTimeout    int             `json:"sessionTimeout"` // minutos
	PasswordExpiry    bool            `json:"passwordExpiry"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	DiscountRules     []DiscountRule  `json:"discountRules"`
	WorkingHours      []WorkingHours  `json:"workingHours"`
	Features          []Feature       `json:"features"`
}

// ActivePromotionPct mayor porcentaje de descuento activo; cero si no hay
// promociones vigentes. Las reglas de monto fijo no aplican aquí.
func (s SystemSettings) ActivePromotionPct() decimal.Decimal {
	best := decimal.Zero
	for _, r := range s.DiscountRules {
		if r.IsActive && r.Type == "percentage" && r.Value.GreaterThan(best) {
			best = r.Value
		}
	}
	return best
}
