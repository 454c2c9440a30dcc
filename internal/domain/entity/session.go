package entity

import "fmt"

// Role rol cerrado del usuario autenticado. Se modela como enum con matching
// exhaustivo en el router: añadir un rol obliga a revisar cada switch.
type Role string

// Roles válidos.
const (
	RoleAdmin  Role = "admin"
	RoleSales  Role = "sales"
	RoleViewer Role = "viewer" // solo lectura; el backend lo asigna, el cliente no lo emite
)

// ParseRole valida la cadena persistida/recibida y la convierte al enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleSales, RoleViewer:
		return Role(s), nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

// Session identidad autenticada en memoria. La tripleta (Token, Role, Email) es
// el único estado durable propiedad del cliente; se persiste completa o no se
// persiste.
type Session struct {
	Email string
	Role  Role
	Token string // bearer opaco emitido por el backend
}
