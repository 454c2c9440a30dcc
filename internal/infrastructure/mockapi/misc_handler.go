package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// MiscHandler endpoints agregados: estadísticas, auditoría, avisos y
// configuración del sistema.
type MiscHandler struct {
	store *Store
}

// NewMiscHandler construye el handler misceláneo.
func NewMiscHandler(store *Store) *MiscHandler {
	return &MiscHandler{store: store}
}

// DashboardStats GET /dashboard-stats/ — siempre recalculado sobre el estado
// actual, nunca cacheado.
func (h *MiscHandler) DashboardStats(c *fiber.Ctx) error {
	return c.JSON(h.store.Stats())
}

// AuditLogs GET /audit-logs/
func (h *MiscHandler) AuditLogs(c *fiber.Ctx) error {
	return c.JSON(h.store.AuditLogs())
}

// Notifications GET /notifications/
func (h *MiscHandler) Notifications(c *fiber.Ctx) error {
	return c.JSON(h.store.Notifications())
}

// GetSettings GET /system-settings/
func (h *MiscHandler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(h.store.Settings())
}

// UpdateSettings PUT /system-settings/ — reemplazo del blob completo.
func (h *MiscHandler) UpdateSettings(c *fiber.Ctx) error {
	var in entity.SystemSettings
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	h.store.SaveSettings(in)
	h.store.AppendAudit("settings", AuthedEmail(c), "System settings updated", c.IP(), "")
	return c.JSON(in)
}
