package entity

// User personal del sistema (gestión desde el dashboard admin).
// Token es el access token de un solo uso para el alta de vendedores; el
// backend lo anula tras el primer login exitoso.
type User struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Token  string `json:"token"`
	Active bool   `json:"active"`
}
