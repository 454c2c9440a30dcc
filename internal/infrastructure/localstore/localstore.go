// Package localstore es el almacenamiento local durable del cliente: la
// tripleta de sesión (token, email, role) en claves planas y el blob de
// configuración bajo su propia clave. Todo acceso pasa por aquí; ningún otro
// paquete toca el disco, de modo que el backend de almacenamiento puede
// cambiarse sin tocar a los llamadores.
package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// Claves planas, sin namespacing más allá del nombre: cada clave es un archivo
// dentro del directorio de configuración del usuario.
const (
	keyToken    = "token"
	keyEmail    = "email"
	keyRole     = "role"
	settingsKey = "settings.json"
)

// Store almacenamiento basado en archivos con permisos restrictivos.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New construye el store sobre dir, creándolo si no existe.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string { return filepath.Join(s.dir, key) }

func (s *Store) write(key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

func (s *Store) read(key string) string {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// SaveSession persiste la tripleta completa. Se escribe inmediatamente tras un
// login exitoso; nunca parcial.
func (s *Store) SaveSession(token, email, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(keyToken, token); err != nil {
		return err
	}
	if err := s.write(keyEmail, email); err != nil {
		return err
	}
	return s.write(keyRole, role)
}

// LoadSession devuelve la tripleta persistida. ok solo si las tres claves
// están presentes y no vacías: una tripleta incompleta no rehidrata sesión.
func (s *Store) LoadSession() (token, email, role string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, email, role = s.read(keyToken), s.read(keyEmail), s.read(keyRole)
	return token, email, role, token != "" && email != "" && role != ""
}

// ClearToken elimina solo el token persistido. Es lo que hace el logout: sin
// token la tripleta queda incompleta y la próxima rehidratación falla, aunque
// email y role permanezcan como conveniencia para el formulario de login.
func (s *Store) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(keyToken))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// SaveSettings espeja el blob completo de configuración como un único objeto
// serializado.
func (s *Store) SaveSettings(cfg entity.SystemSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(settingsKey), raw, 0o600)
}

// LoadSettings lee el blob espejado; ok=false si nunca se guardó.
func (s *Store) LoadSettings() (entity.SystemSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cfg entity.SystemSettings
	raw, err := os.ReadFile(s.path(settingsKey))
	if err != nil {
		return cfg, false
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return entity.SystemSettings{}, false
	}
	return cfg, true
}
