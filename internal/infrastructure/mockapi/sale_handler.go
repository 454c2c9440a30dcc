package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// SaleHandler registro y consulta de ventas.
type SaleHandler struct {
	store *Store
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(store *Store) *SaleHandler {
	return &SaleHandler{store: store}
}

// List GET /sales/
func (h *SaleHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Sales())
}

// Create POST /sales/ — la venta es atómica: si alguna línea no tiene stock
// suficiente se rechaza completa con 400 y no se toca nada.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in entity.Sale
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sale must contain at least one item"})
	}
	created, err := h.store.CreateSale(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.AppendAudit("sale", AuthedEmail(c), "Sale recorded", c.IP(), created.Total.String())
	return c.Status(fiber.StatusCreated).JSON(created)
}
