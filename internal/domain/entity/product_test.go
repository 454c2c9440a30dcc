package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

func TestEffectiveThreshold_PropioSobreGlobal(t *testing.T) {
	withOwn := entity.Product{LowStockThreshold: 20}
	assert.Equal(t, 20, withOwn.EffectiveThreshold(10))

	withoutOwn := entity.Product{}
	assert.Equal(t, 10, withoutOwn.EffectiveThreshold(10), "sin umbral propio rige el global")
}

func TestIsLowStock_Derivado(t *testing.T) {
	cases := []struct {
		name string
		p    entity.Product
		want bool
	}{
		{"igual al umbral", entity.Product{Quantity: 10}, true},
		{"bajo el umbral", entity.Product{Quantity: 3}, true},
		{"sobre el umbral", entity.Product{Quantity: 11}, false},
		{"umbral propio más alto", entity.Product{Quantity: 15, LowStockThreshold: 20}, true},
		{"descontinuado nunca alerta", entity.Product{Quantity: 0, Discontinued: true}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.IsLowStock(10))
		})
	}
}

func TestParseRole_SoloRolesConocidos(t *testing.T) {
	for _, valid := range []string{"admin", "sales", "viewer"} {
		role, err := entity.ParseRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, entity.Role(valid), role)
	}

	_, err := entity.ParseRole("superuser")
	assert.Error(t, err)
	_, err = entity.ParseRole("")
	assert.Error(t, err)
}

func TestActivePromotionPct_MayorPorcentajeActivo(t *testing.T) {
	settings := entity.SystemSettings{
		DiscountRules: []entity.DiscountRule{
			{Type: "percentage", Value: decimal.NewFromInt(10), IsActive: true},
			{Type: "percentage", Value: decimal.NewFromInt(25), IsActive: false}, // inactiva
			{Type: "fixed", Value: decimal.NewFromInt(50), IsActive: true},       // monto fijo no aplica
			{Type: "percentage", Value: decimal.NewFromInt(15), IsActive: true},
		},
	}
	assert.True(t, settings.ActivePromotionPct().Equal(decimal.NewFromInt(15)))
}

func TestActivePromotionPct_SinReglas_EsCero(t *testing.T) {
	assert.True(t, entity.SystemSettings{}.ActivePromotionPct().IsZero())
}
