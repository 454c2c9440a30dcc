package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// ProductHandler CRUD del catálogo de productos.
type ProductHandler struct {
	store *Store
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(store *Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List GET /products/
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Products())
}

// Create POST /products/
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in entity.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product name is required"})
	}
	created := h.store.CreateProduct(in)
	h.store.AppendAudit("inventory", AuthedEmail(c), "Product created", c.IP(), created.Name)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update PUT /products/:id/
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	var in entity.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	in.ID = id
	updated, ok := h.store.UpdateProduct(in)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	h.store.AppendAudit("inventory", AuthedEmail(c), "Product updated", c.IP(), updated.Name)
	return c.JSON(updated)
}

// Delete DELETE /products/:id/
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	if !h.store.DeleteProduct(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	h.store.AppendAudit("inventory", AuthedEmail(c), "Product deleted", c.IP(), "")
	return c.SendStatus(fiber.StatusNoContent)
}
