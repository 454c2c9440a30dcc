package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// CustomerHandler CRUD de la cartera de clientes.
type CustomerHandler struct {
	store *Store
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(store *Store) *CustomerHandler {
	return &CustomerHandler{store: store}
}

// List GET /customers/
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Customers())
}

// Create POST /customers/
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in entity.Customer
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer name is required"})
	}
	created := h.store.CreateCustomer(in)
	h.store.AppendAudit("customer", AuthedEmail(c), "Customer created", c.IP(), created.Name)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update PUT /customers/:id/
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer id"})
	}
	var in entity.Customer
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	in.CustomerID = id
	updated, ok := h.store.UpdateCustomer(in)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}
	h.store.AppendAudit("customer", AuthedEmail(c), "Customer updated", c.IP(), updated.Name)
	return c.JSON(updated)
}

// Delete DELETE /customers/:id/
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer id"})
	}
	if !h.store.DeleteCustomer(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}
	h.store.AppendAudit("customer", AuthedEmail(c), "Customer deleted", c.IP(), "")
	return c.SendStatus(fiber.StatusNoContent)
}
