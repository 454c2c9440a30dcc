package entity

// Notification aviso del backend. Feed de solo lectura para el cliente.
type Notification struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Type      string `json:"type"` // info, warning, error
	CreatedAt string `json:"created_at"`
}
