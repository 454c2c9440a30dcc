package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/localstore"
)

func newStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := localstore.New(filepath.Join(dir, "app"))
	require.NoError(t, err)
	return store, filepath.Join(dir, "app")
}

func TestSaveLoadSession_TripletaCompleta(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.SaveSession("jwt-abc", "a@shop.com", "admin"))

	token, email, role, ok := store.LoadSession()
	require.True(t, ok)
	assert.Equal(t, "jwt-abc", token)
	assert.Equal(t, "a@shop.com", email)
	assert.Equal(t, "admin", role)
}

func TestLoadSession_SinDatos_NoOk(t *testing.T) {
	store, _ := newStore(t)
	_, _, _, ok := store.LoadSession()
	assert.False(t, ok)
}

func TestClearToken_DejaEmailYRole(t *testing.T) {
	store, dir := newStore(t)
	require.NoError(t, store.SaveSession("jwt-abc", "a@shop.com", "admin"))

	require.NoError(t, store.ClearToken())

	// La tripleta incompleta no rehidrata, pero email y role permanecen como
	// conveniencia para el formulario de login.
	_, email, role, ok := store.LoadSession()
	assert.False(t, ok)
	assert.Equal(t, "a@shop.com", email)
	assert.Equal(t, "admin", role)

	_, err := os.Stat(filepath.Join(dir, "token"))
	assert.True(t, os.IsNotExist(err), "el archivo del token debe desaparecer")
}

func TestClearToken_SinToken_EsNoOp(t *testing.T) {
	store, _ := newStore(t)
	assert.NoError(t, store.ClearToken())
}

func TestSaveSession_Sobrescribe(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.SaveSession("jwt-1", "a@shop.com", "admin"))
	require.NoError(t, store.SaveSession("jwt-2", "b@shop.com", "sales"))

	token, email, role, ok := store.LoadSession()
	require.True(t, ok)
	assert.Equal(t, "jwt-2", token)
	assert.Equal(t, "b@shop.com", email)
	assert.Equal(t, "sales", role)
}

func TestSettings_EspejoCompleto(t *testing.T) {
	store, _ := newStore(t)

	_, ok := store.LoadSettings()
	assert.False(t, ok, "sin espejo previo no hay configuración")

	cfg := entity.SystemSettings{
		CurrencySymbol:    "₵",
		TaxRate:           decimal.NewFromInt(15),
		LowStockThreshold: 12,
		DiscountRules: []entity.DiscountRule{
			{ID: "promo-1", Name: "Verano", Type: "percentage", Value: decimal.NewFromInt(10), IsActive: true},
		},
	}
	require.NoError(t, store.SaveSettings(cfg))

	loaded, ok := store.LoadSettings()
	require.True(t, ok)
	assert.Equal(t, "₵", loaded.CurrencySymbol)
	assert.Equal(t, 12, loaded.LowStockThreshold)
	require.Len(t, loaded.DiscountRules, 1)
	assert.True(t, loaded.DiscountRules[0].Value.Equal(decimal.NewFromInt(10)))
	assert.True(t, loaded.ActivePromotionPct().Equal(decimal.NewFromInt(10)))
}

func TestNew_CreaDirectorioConPermisosRestrictivos(t *testing.T) {
	_, dir := newStore(t)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}
