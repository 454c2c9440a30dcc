// Package mockapi es el backend simulado para desarrollo local: implementa el
// contrato REST completo que consume la suite cliente, en memoria y sin
// dependencias externas. Emite bearer JWT, mantiene access tokens de un solo
// uso para el alta de vendedores y lleva stock, auditoría y avisos.
package mockapi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// account usuario con credenciales; extiende la entidad de cable con el hash
// bcrypt que nunca viaja.
type account struct {
	entity.User
	PasswordHash []byte
}

// accessToken token de un solo uso. UserID 0 = token de propósito general.
type accessToken struct {
	Token     string
	UserID    int
	Used      bool
	CreatedAt time.Time
}

// Store estado en memoria del backend simulado.
type Store struct {
	mu sync.Mutex

	accounts      []account
	products      []entity.Product
	customers     []entity.Customer
	sales         []entity.Sale
	notifications []entity.Notification
	auditLogs     []entity.AuditLogEntry
	settings      entity.SystemSettings
	tokens        []accessToken

	nextUserID     int
	nextProductID  int
	nextCustomerID int
	nextSaleID     int
	nextNotifID    int
	nextAuditID    int64
}

// NewStore arranca con configuración por defecto y contadores en 1.
func NewStore() *Store {
	return &Store{
		settings: entity.SystemSettings{
			CurrencySymbol:    "₵",
			TaxRate:           decimal.NewFromInt(15),
			SessionTimeout:    30,
			LowStockThreshold: 10,
		},
		nextUserID:     1,
		nextProductID:  1,
		nextCustomerID: 1,
		nextSaleID:     1,
		nextNotifID:    1,
		nextAuditID:    1,
	}
}

// newAccessToken token corto estilo backend original: 10 caracteres hex.
func newAccessToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// ── Cuentas y autenticación ───────────────────────────────────────────────────

// CreateAdmin registra un administrador. Email duplicado es error.
func (s *Store) CreateAdmin(email, password string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findAccount(email) != nil {
		return nil, fmt.Errorf("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := account{
		User:         entity.User{ID: s.nextUserID, Email: email, Role: entity.RoleAdmin, Active: true},
		PasswordHash: hash,
	}
	s.nextUserID++
	s.accounts = append(s.accounts, acc)
	u := acc.User
	return &u, nil
}

// Authenticate verifica email+password de una cuenta existente.
func (s *Store) Authenticate(email, password string) (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.findAccount(email)
	if acc == nil {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)) != nil {
		return nil, false
	}
	u := acc.User
	return &u, true
}

// AuthSalesperson login o primer registro de un vendedor.
//
// Reglas del token de un solo uso:
//   - cuenta existente con password fijada -> login normal por credenciales,
//     sin consumir token
//   - cuenta creada por el admin (sin password todavía) -> primer registro: el
//     token se consume aquí y fija la password inicial; un token ligado a otro
//     usuario no sirve
//   - email sin cuenta -> primer registro que además crea la cuenta
//
// Un token consumido no autentica una segunda sesión jamás.
func (s *Store) AuthSalesperson(email, password, token string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acc := s.findAccount(email); acc != nil {
		if len(acc.PasswordHash) == 0 {
			// Alta hecha por el admin, pendiente de primer registro.
			if err := s.consumeToken(token, acc.ID); err != nil {
				return nil, err
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			acc.PasswordHash = hash
			u := acc.User
			return &u, nil
		}
		if bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)) != nil {
			return nil, fmt.Errorf("Invalid credentials")
		}
		u := acc.User
		return &u, nil
	}

	// Email sin cuenta: el primer registro también la crea.
	if err := s.consumeToken(token, 0); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := account{
		User:         entity.User{ID: s.nextUserID, Email: email, Role: entity.RoleSales, Active: true},
		PasswordHash: hash,
	}
	s.nextUserID++
	s.accounts = append(s.accounts, acc)
	u := acc.User
	return &u, nil
}

// consumeToken valida y quema un access token; requiere mu tomado. forUserID
// distinto de cero exige que el token sea general o esté ligado a ese usuario.
func (s *Store) consumeToken(token string, forUserID int) error {
	tk := s.findToken(token)
	if tk == nil {
		return fmt.Errorf("Invalid token")
	}
	if tk.Used {
		return fmt.Errorf("Token has already been used")
	}
	if tk.UserID != 0 && forUserID != 0 && tk.UserID != forUserID {
		return fmt.Errorf("Invalid token")
	}
	tk.Used = true
	return nil
}

// GenerateToken emite un access token, ligado a un usuario o general (userID 0).
func (s *Store) GenerateToken(userID int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tk := accessToken{Token: newAccessToken(), UserID: userID, CreatedAt: time.Now()}
	s.tokens = append(s.tokens, tk)
	if userID != 0 {
		for i := range s.accounts {
			if s.accounts[i].ID == userID {
				s.accounts[i].User.Token = tk.Token
			}
		}
	}
	return tk.Token
}

func (s *Store) findAccount(email string) *account {
	for i := range s.accounts {
		if strings.EqualFold(s.accounts[i].Email, email) {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *Store) findToken(token string) *accessToken {
	for i := range s.tokens {
		if s.tokens[i].Token == token {
			return &s.tokens[i]
		}
	}
	return nil
}

// ── Personal ──────────────────────────────────────────────────────────────────

// Users lista de personal (sin hashes).
func (s *Store) Users() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.User, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a.User)
	}
	return out
}

// CreateUser alta de personal desde el dashboard admin; password inicial
// vacía, el vendedor la fija en su primer auth con el access token.
func (s *Store) CreateUser(u entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findAccount(u.Email) != nil {
		return nil, fmt.Errorf("email already registered")
	}
	u.ID = s.nextUserID
	s.nextUserID++
	s.accounts = append(s.accounts, account{User: u})
	out := u
	return &out, nil
}

// UpdateUser reemplazo completo por id.
func (s *Store) UpdateUser(u entity.User) (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == u.ID {
			hash := s.accounts[i].PasswordHash
			s.accounts[i] = account{User: u, PasswordHash: hash}
			out := u
			return &out, true
		}
	}
	return nil, false
}

// DeleteUser borra por id.
func (s *Store) DeleteUser(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// UserExists true si el id corresponde a una cuenta.
func (s *Store) UserExists(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return true
		}
	}
	return false
}
