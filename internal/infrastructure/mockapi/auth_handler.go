package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/pkg/jwt"
)

// AuthHandler maneja registro y login de administradores y vendedores.
type AuthHandler struct {
	store  *Store
	secret string
	issuer string
	// minutos de vigencia del JWT emitido
	expMinutes int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(store *Store, secret, issuer string, expMinutes int) *AuthHandler {
	return &AuthHandler{store: store, secret: secret, issuer: issuer, expMinutes: expMinutes}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

// RegisterAdmin POST /admin/register/ — alta de administrador, responde el JWT
// de sesión para que el alta encadene directo al dashboard.
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var in credentialsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}
	user, err := h.store.CreateAdmin(in.Email, in.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
	}
	token, err := jwt.Generate(h.secret, user.ID, user.Email, string(user.Role), h.issuer, h.expMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.AppendAudit("auth", user.Email, "Admin account registered", c.IP(), "")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

// LoginAdmin POST /admin/login/ — solo cuentas con rol admin.
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	var in credentialsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	user, ok := h.store.Authenticate(in.Email, in.Password)
	if !ok || user.Role != "admin" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	token, err := jwt.Generate(h.secret, user.ID, user.Email, string(user.Role), h.issuer, h.expMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.AppendAudit("auth", user.Email, "Admin login", c.IP(), "")
	return c.JSON(fiber.Map{"token": token})
}

// AuthSalesperson POST /salesperson/auth/ — login de vendedor existente o
// primer registro con access token de un solo uso. Los mensajes de error son
// contrato: el cliente los interpreta por substring.
func (h *AuthHandler) AuthSalesperson(c *fiber.Ctx) error {
	var in credentialsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}
	user, err := h.store.AuthSalesperson(in.Email, in.Password, in.Token)
	if err != nil {
		status := fiber.StatusBadRequest
		if err.Error() == "Invalid credentials" {
			status = fiber.StatusUnauthorized
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	token, err := jwt.Generate(h.secret, user.ID, user.Email, string(user.Role), h.issuer, h.expMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.AppendAudit("auth", user.Email, "Salesperson login", c.IP(), "")
	return c.JSON(fiber.Map{"token": token})
}
