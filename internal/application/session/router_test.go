package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// loggedInStore deja un store con sesión del rol dado y landing consumido.
func loggedInStore(t *testing.T, role entity.Role) *session.Store {
	t.Helper()
	store := newStore(&fakeAuthAPI{}, &fakeStorage{})
	store.DismissLanding()
	if role != "" {
		_, err := store.Login(context.Background(), "u@shop.com", "pw", role, "TKN1")
		require.NoError(t, err)
	}
	return store
}

// Tabla de decisión del enrutador: evaluación de arriba hacia abajo con
// primera coincidencia.
func TestResolve_TablaDeDecision(t *testing.T) {
	cases := []struct {
		name string
		role entity.Role // "" = sin sesión
		path string
		want session.View
	}{
		{"sin sesión, path admin", "", session.PathAdmin, session.ViewLogin},
		{"sin sesión, path sales", "", session.PathSales, session.ViewLogin},
		{"sin sesión, path cualquiera", "", "/whatever", session.ViewLogin},

		{"admin en su path", entity.RoleAdmin, session.PathAdmin, session.ViewAdminDashboard},
		{"admin redirigido desde sales", entity.RoleAdmin, session.PathSales, session.ViewAdminDashboard},
		{"admin en path no coincidente", entity.RoleAdmin, "/unknown", session.ViewAdminDashboard},

		{"sales en su path", entity.RoleSales, session.PathSales, session.ViewSalesDashboard},
		{"sales redirigido desde admin", entity.RoleSales, session.PathAdmin, session.ViewSalesDashboard},
		{"sales en path no coincidente", entity.RoleSales, "/unknown", session.ViewSalesDashboard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := loggedInStore(t, tc.role)
			assert.Equal(t, tc.want, store.Resolve(tc.path))
		})
	}
}

func TestResolve_RolViewerCaeAlLogin(t *testing.T) {
	// El rol de solo lectura entra vía rehidratación (el backend lo asigna, el
	// cliente no lo emite) pero no tiene dashboard: cae al login.
	storage := &fakeStorage{token: "jwt-v", email: "v@shop.com", role: "viewer"}
	store := newStore(&fakeAuthAPI{}, storage)
	require.True(t, store.Rehydrate())

	assert.Equal(t, session.ViewLogin, store.Resolve(session.PathAdmin))
	assert.Equal(t, session.ViewLogin, store.Resolve(session.PathSales))
}

func TestResolve_LandingTieneMaximaPrioridad(t *testing.T) {
	// El flag de landing gana incluso con sesión rehidratable pendiente.
	store := newStore(&fakeAuthAPI{}, &fakeStorage{})
	assert.Equal(t, session.ViewLanding, store.Resolve(session.PathAdmin))

	store.DismissLanding()
	assert.Equal(t, session.ViewLogin, store.Resolve(session.PathAdmin),
		"consumido el landing, sin sesión toca login")
}

func TestResolve_LogoutVuelveALanding(t *testing.T) {
	store := loggedInStore(t, entity.RoleAdmin)
	require.Equal(t, session.ViewAdminDashboard, store.Resolve(session.PathAdmin))

	store.Logout()
	assert.Equal(t, session.ViewLanding, store.Resolve(session.PathAdmin),
		"el logout reactiva la página de inicio")
}
