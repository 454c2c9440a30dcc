package api

import (
	"context"
	"net/http"
)

// TokenResponse respuesta de los endpoints que emiten un token.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterAdmin crea una cuenta de administrador. Endpoint público.
func (c *Client) RegisterAdmin(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out TokenResponse
	if err := c.request(ctx, http.MethodPost, "/admin/register/", body, &out, false, "Failed to register"); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginAdmin autentica a un administrador. Endpoint público.
func (c *Client) LoginAdmin(ctx context.Context, email, password string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out TokenResponse
	if err := c.request(ctx, http.MethodPost, "/admin/login/", body, &out, false, "Failed to login"); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuthSalesperson login o primer registro de un vendedor con access token de
// un solo uso. Endpoint público. El mensaje de error del backend se propaga
// intacto: los substrings conocidos ("Invalid token", "already been used",
// "Invalid credentials") son parte del contrato y los interpreta la vista.
func (c *Client) AuthSalesperson(ctx context.Context, email, password, accessToken string) (*TokenResponse, error) {
	body := map[string]string{"email": email, "password": password, "token": accessToken}
	var out TokenResponse
	if err := c.request(ctx, http.MethodPost, "/salesperson/auth/", body, &out, false, "Failed to login"); err != nil {
		return nil, err
	}
	return &out, nil
}
