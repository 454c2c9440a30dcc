package mockapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/mockapi"
)

// ──────────────────────────────────────────────────────────────────────────────
// Primer registro de un vendedor dado de alta por el admin
// ──────────────────────────────────────────────────────────────────────────────

// La cuenta creada desde el dashboard admin no tiene password todavía: su
// primer auth debe ir por la rama del token, no por la de credenciales.
func TestAuthSalesperson_CuentaCreadaPorAdmin_RegistraConToken(t *testing.T) {
	store := mockapi.NewStore()
	created, err := store.CreateUser(entity.User{Email: "a@b.com", Role: entity.RoleSales, Active: true})
	require.NoError(t, err)
	token := store.GenerateToken(created.ID)

	user, err := store.AuthSalesperson("a@b.com", "pw1", token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID, "el registro no crea una cuenta nueva")
	assert.Equal(t, entity.RoleSales, user.Role)

	// El primer registro fijó la password: ahora el login es por credenciales.
	_, err = store.AuthSalesperson("a@b.com", "pw1", "")
	assert.NoError(t, err)

	_, err = store.AuthSalesperson("a@b.com", "wrong", "")
	assert.EqualError(t, err, "Invalid credentials")
}

func TestAuthSalesperson_TokenDeOtroUsuario_Rechazado(t *testing.T) {
	store := mockapi.NewStore()
	_, err := store.CreateUser(entity.User{Email: "a@b.com", Role: entity.RoleSales, Active: true})
	require.NoError(t, err)
	b, err := store.CreateUser(entity.User{Email: "b@b.com", Role: entity.RoleSales, Active: true})
	require.NoError(t, err)
	tokenB := store.GenerateToken(b.ID)

	_, err = store.AuthSalesperson("a@b.com", "pw1", tokenB)
	assert.EqualError(t, err, "Invalid token")

	// El token no se quemó en el intento fallido: su dueño aún puede usarlo.
	_, err = store.AuthSalesperson("b@b.com", "pw2", tokenB)
	assert.NoError(t, err)
}

func TestAuthSalesperson_TokenConsumido_NoAutenticaSegundaVez(t *testing.T) {
	store := mockapi.NewStore()
	created, err := store.CreateUser(entity.User{Email: "a@b.com", Role: entity.RoleSales, Active: true})
	require.NoError(t, err)
	token := store.GenerateToken(created.ID)

	_, err = store.AuthSalesperson("a@b.com", "pw1", token)
	require.NoError(t, err)

	_, err = store.AuthSalesperson("nuevo@b.com", "pw2", token)
	assert.EqualError(t, err, "Token has already been used")
}

func TestAuthSalesperson_TokenGeneral_CreaCuentaNueva(t *testing.T) {
	store := mockapi.NewStore()
	token := store.GenerateToken(0)

	user, err := store.AuthSalesperson("fresh@shop.com", "pw", token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSales, user.Role)
	assert.True(t, user.Active)

	got, ok := store.Authenticate("fresh@shop.com", "pw")
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
}
