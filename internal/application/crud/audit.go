package crud

import (
	"time"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// AddAuditEntry inserta una entrada provisional de auditoría en la caché
// local: id = milisegundos epoch y timestamp local, pendientes de cualquier
// eco del servidor. El registro real es append-only y lo escribe el backend;
// esto solo da feedback inmediato en la vista de auditoría.
func (o *Orchestrator) AddAuditEntry(logType, actor, action, details string) {
	if actor == "" {
		actor = "system"
	}
	entry := entity.AuditLogEntry{
		ID:        time.Now().UnixMilli(),
		Type:      logType,
		User:      actor,
		Action:    action,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		IPAddress: "local",
		Details:   details,
	}
	o.data.AuditLogs.Prepend(entry)
}
