// Package session mantiene la identidad autenticada y decide el enrutamiento
// por rol. Es el único dueño de la tripleta persistida (token, email, role):
// las vistas y el cliente HTTP leen a través de él, nunca del storage directo.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// AuthAPI llamadas de autenticación que consume el store. Lo satisface
// *api.Client.
type AuthAPI interface {
	LoginAdmin(ctx context.Context, email, password string) (*api.TokenResponse, error)
	AuthSalesperson(ctx context.Context, email, password, accessToken string) (*api.TokenResponse, error)
}

// Storage persistencia durable de la tripleta de sesión.
type Storage interface {
	SaveSession(token, email, role string) error
	LoadSession() (token, email, role string, ok bool)
	ClearToken() error
}

// TokenFunc adaptador función -> api.TokenProvider. Permite armar el cliente
// HTTP antes que el store cuando hay ciclo de construcción entre ambos.
type TokenFunc func() string

// Token implementa api.TokenProvider.
func (f TokenFunc) Token() string { return f() }

// Store estado de sesión en memoria + persistencia. Seguro para uso desde los
// tickers de las vistas.
type Store struct {
	mu      sync.RWMutex
	authAPI AuthAPI
	storage Storage
	log     *logger.Logger

	current     *entity.Session
	showLanding bool // flag de página de inicio, se consume una sola vez
}

// NewStore construye el store; arranca mostrando la página de inicio.
func NewStore(authAPI AuthAPI, storage Storage, log *logger.Logger) *Store {
	return &Store{authAPI: authAPI, storage: storage, log: log, showLanding: true}
}

// Login autentica según el rol. Para admin usa email+password; para sales
// añade el access token de un solo uso. En éxito persiste la tripleta de
// inmediato y fija la sesión en memoria. En fallo la sesión previa queda
// intacta y el error del backend se propaga sin modificar: la vista de login
// es quien reconoce los substrings conocidos.
func (s *Store) Login(ctx context.Context, email, password string, role entity.Role, accessToken string) (*entity.Session, error) {
	var (
		resp *api.TokenResponse
		err  error
	)
	switch role {
	case entity.RoleAdmin:
		resp, err = s.authAPI.LoginAdmin(ctx, email, password)
	case entity.RoleSales:
		resp, err = s.authAPI.AuthSalesperson(ctx, email, password, accessToken)
	case entity.RoleViewer:
		return nil, fmt.Errorf("%w: el rol viewer no inicia sesión desde esta aplicación", domain.ErrValidation)
	default:
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrValidation, role)
	}
	if err != nil {
		return nil, err
	}

	sess := &entity.Session{Email: email, Role: role, Token: resp.Token}
	if err := s.storage.SaveSession(sess.Token, sess.Email, string(sess.Role)); err != nil {
		// La sesión en memoria vale aunque el disco falle; se avisa y sigue.
		s.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}

	s.mu.Lock()
	s.current = sess
	s.showLanding = false
	s.mu.Unlock()

	s.log.Info().Str("email", email).Str("role", string(role)).Msg("login exitoso")
	out := *sess
	return &out, nil
}

// Logout invalida localmente: limpia la sesión en memoria y borra el token
// persistido. No llama a ningún endpoint; el backend no expone revocación.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.showLanding = true
	s.mu.Unlock()
	if err := s.storage.ClearToken(); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo borrar el token persistido")
	}
	s.log.Info().Msg("sesión cerrada (solo local)")
}

// Rehydrate reconstruye la sesión desde storage al arrancar, sin contactar al
// backend: la validez del token se descubre con el primer 401. Devuelve true
// si había tripleta completa con rol válido.
func (s *Store) Rehydrate() bool {
	token, email, roleStr, ok := s.storage.LoadSession()
	if !ok {
		return false
	}
	role, err := entity.ParseRole(roleStr)
	if err != nil {
		s.log.Warn().Str("role", roleStr).Msg("rol persistido inválido, se ignora la sesión")
		return false
	}
	s.mu.Lock()
	s.current = &entity.Session{Email: email, Role: role, Token: token}
	s.showLanding = false
	s.mu.Unlock()
	s.log.Debug().Str("email", email).Str("role", roleStr).Msg("sesión rehidratada")
	return true
}

// Current copia de la sesión vigente, o nil si no hay.
func (s *Store) Current() *entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

// Token implementa api.TokenProvider. Vacío sin sesión.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// DismissLanding consume el flag de página de inicio.
func (s *Store) DismissLanding() {
	s.mu.Lock()
	s.showLanding = false
	s.mu.Unlock()
}
