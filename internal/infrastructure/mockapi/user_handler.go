package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// UserHandler gestión de personal y emisión de access tokens. Todo el grupo va
// detrás de RequireAdmin.
type UserHandler struct {
	store *Store
}

// NewUserHandler construye el handler de personal.
func NewUserHandler(store *Store) *UserHandler {
	return &UserHandler{store: store}
}

// List GET /users/
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Users())
}

// Create POST /users/
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in entity.User
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
	}
	if _, err := entity.ParseRole(string(in.Role)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	}
	created, err := h.store.CreateUser(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
	}
	h.store.AppendAudit("user", AuthedEmail(c), "User created", c.IP(), created.Email)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update PUT /users/:id/
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}
	var in entity.User
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	in.ID = id
	updated, ok := h.store.UpdateUser(in)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	h.store.AppendAudit("user", AuthedEmail(c), "User updated", c.IP(), updated.Email)
	return c.JSON(updated)
}

// Delete DELETE /users/:id/
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}
	if !h.store.DeleteUser(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	h.store.AppendAudit("user", AuthedEmail(c), "User deleted", c.IP(), "")
	return c.SendStatus(fiber.StatusNoContent)
}

type generateTokenRequest struct {
	UserID int `json:"user_id"`
}

// GenerateUserToken POST /users/generate-token/ — token ligado a un usuario.
func (h *UserHandler) GenerateUserToken(c *fiber.Ctx) error {
	var in generateTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !h.store.UserExists(in.UserID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	token := h.store.GenerateToken(in.UserID)
	h.store.AppendAudit("user", AuthedEmail(c), "Access token generated", c.IP(), "")
	return c.JSON(fiber.Map{"token": token})
}

// GenerateAccessToken POST /generate-token/ — token de propósito general.
func (h *UserHandler) GenerateAccessToken(c *fiber.Ctx) error {
	token := h.store.GenerateToken(0)
	h.store.AppendAudit("user", AuthedEmail(c), "Access token generated", c.IP(), "")
	return c.JSON(fiber.Map{"token": token})
}
