package session_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuthAPI struct {
	adminErr error
	salesErr error

	lastEmail    string
	lastPassword string
	lastToken    string
}

func (f *fakeAuthAPI) LoginAdmin(_ context.Context, email, password string) (*api.TokenResponse, error) {
	f.lastEmail, f.lastPassword = email, password
	if f.adminErr != nil {
		return nil, f.adminErr
	}
	return &api.TokenResponse{Token: "jwt-admin"}, nil
}

func (f *fakeAuthAPI) AuthSalesperson(_ context.Context, email, password, accessToken string) (*api.TokenResponse, error) {
	f.lastEmail, f.lastPassword, f.lastToken = email, password, accessToken
	if f.salesErr != nil {
		return nil, f.salesErr
	}
	return &api.TokenResponse{Token: "jwt-sales"}, nil
}

type fakeStorage struct {
	token, email, role string
	saves              int
	clears             int
}

func (f *fakeStorage) SaveSession(token, email, role string) error {
	f.token, f.email, f.role = token, email, role
	f.saves++
	return nil
}

func (f *fakeStorage) LoadSession() (string, string, string, bool) {
	ok := f.token != "" && f.email != "" && f.role != ""
	return f.token, f.email, f.role, ok
}

func (f *fakeStorage) ClearToken() error {
	f.token = ""
	f.clears++
	return nil
}

func newStore(authAPI *fakeAuthAPI, storage *fakeStorage) *session.Store {
	return session.NewStore(authAPI, storage, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminExitoso_PersisteTripleta(t *testing.T) {
	authAPI := &fakeAuthAPI{}
	storage := &fakeStorage{}
	store := newStore(authAPI, storage)

	sess, err := store.Login(context.Background(), "admin@shop.com", "secret", entity.RoleAdmin, "")
	require.NoError(t, err)

	assert.Equal(t, "admin@shop.com", sess.Email)
	assert.Equal(t, entity.RoleAdmin, sess.Role)
	assert.Equal(t, "jwt-admin", sess.Token)

	// La tripleta completa se persiste de inmediato, nunca parcial.
	assert.Equal(t, 1, storage.saves, "debe persistir exactamente una vez")
	assert.Equal(t, "jwt-admin", storage.token)
	assert.Equal(t, "admin@shop.com", storage.email)
	assert.Equal(t, "admin", storage.role)
}

func TestLogin_SalesUsaAccessToken(t *testing.T) {
	authAPI := &fakeAuthAPI{}
	store := newStore(authAPI, &fakeStorage{})

	sess, err := store.Login(context.Background(), "v@shop.com", "pw", entity.RoleSales, "TKN1")
	require.NoError(t, err)

	assert.Equal(t, "TKN1", authAPI.lastToken, "el access token debe llegar al endpoint de vendedor")
	assert.Equal(t, entity.RoleSales, sess.Role)
}

func TestLogin_Fallido_NoTocaSesionNiStorage(t *testing.T) {
	authAPI := &fakeAuthAPI{adminErr: fmt.Errorf("Invalid credentials")}
	storage := &fakeStorage{}
	store := newStore(authAPI, storage)

	_, err := store.Login(context.Background(), "x@shop.com", "bad", entity.RoleAdmin, "")
	require.Error(t, err)

	// El error del backend se propaga sin modificar: la vista de login es
	// quien reconoce los substrings conocidos.
	assert.EqualError(t, err, "Invalid credentials")
	assert.Nil(t, store.Current(), "la sesión previa (ninguna) queda intacta")
	assert.Zero(t, storage.saves, "nada debe persistirse en un login fallido")
}

func TestLogin_RolViewer_EsRechazado(t *testing.T) {
	store := newStore(&fakeAuthAPI{}, &fakeStorage{})

	_, err := store.Login(context.Background(), "v@shop.com", "pw", entity.RoleViewer, "")
	assert.Error(t, err, "el rol viewer no inicia sesión desde esta aplicación")
	assert.Nil(t, store.Current())
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout y rehidratación
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_SoloLocal_BorraTokenYVuelveALanding(t *testing.T) {
	storage := &fakeStorage{}
	store := newStore(&fakeAuthAPI{}, storage)

	_, err := store.Login(context.Background(), "admin@shop.com", "secret", entity.RoleAdmin, "")
	require.NoError(t, err)

	store.Logout()

	assert.Nil(t, store.Current(), "la sesión en memoria debe limpiarse")
	assert.Empty(t, store.Token(), "el TokenProvider debe quedar vacío")
	assert.Equal(t, 1, storage.clears, "solo se borra el token persistido")
	assert.Equal(t, "admin@shop.com", storage.email, "email y role permanecen como conveniencia")
}

func TestRehydrate_TripletaCompleta_RestauraSinBackend(t *testing.T) {
	storage := &fakeStorage{token: "jwt-x", email: "a@shop.com", role: "admin"}
	store := newStore(&fakeAuthAPI{}, storage)

	ok := store.Rehydrate()
	require.True(t, ok)

	sess := store.Current()
	require.NotNil(t, sess)
	assert.Equal(t, "a@shop.com", sess.Email)
	assert.Equal(t, entity.RoleAdmin, sess.Role)
	assert.Equal(t, "jwt-x", store.Token())
}

func TestRehydrate_TripletaIncompleta_NoRestaura(t *testing.T) {
	// Tras un logout queda email+role sin token: no debe rehidratar.
	storage := &fakeStorage{email: "a@shop.com", role: "admin"}
	store := newStore(&fakeAuthAPI{}, storage)

	assert.False(t, store.Rehydrate())
	assert.Nil(t, store.Current())
}

func TestRehydrate_RolInvalido_NoRestaura(t *testing.T) {
	storage := &fakeStorage{token: "jwt-x", email: "a@shop.com", role: "superuser"}
	store := newStore(&fakeAuthAPI{}, storage)

	assert.False(t, store.Rehydrate())
	assert.Nil(t, store.Current())
}

// ──────────────────────────────────────────────────────────────────────────────
// TokenProvider
// ──────────────────────────────────────────────────────────────────────────────

func TestToken_SinSesion_DevuelveVacio(t *testing.T) {
	store := newStore(&fakeAuthAPI{}, &fakeStorage{})
	assert.Empty(t, store.Token())
}

func TestTokenFunc_AdaptaFuncion(t *testing.T) {
	var provider session.TokenFunc = func() string { return "abc" }
	assert.Equal(t, "abc", provider.Token())
}
