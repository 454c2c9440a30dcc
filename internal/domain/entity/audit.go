package entity

// AuditLogEntry entrada del registro de auditoría. Append-only desde el punto
// de vista del cliente: las entradas generadas localmente son provisionales
// (id = milisegundos epoch, timestamp local) hasta que el servidor las refleje.
type AuditLogEntry struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	User      string `json:"user"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	IPAddress string `json:"ip_address"`
	Details   string `json:"details"`
}
