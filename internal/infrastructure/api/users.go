package api

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// FetchUsers lista el personal registrado.
func (c *Client) FetchUsers(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := c.get(ctx, "/users/", &out, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return out, nil
}

// AddUser crea un usuario de personal.
func (c *Client) AddUser(ctx context.Context, u entity.User) (*entity.User, error) {
	var out entity.User
	if err := c.post(ctx, "/users/", u, &out, "Failed to add user"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser reemplaza el usuario completo (PUT).
func (c *Client) UpdateUser(ctx context.Context, u entity.User) (*entity.User, error) {
	var out entity.User
	if err := c.put(ctx, fmt.Sprintf("/users/%d/", u.ID), u, &out, "Failed to update user"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser elimina un usuario por id.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/users/%d/", id), "Failed to delete user")
}

// GenerateUserToken emite un access token de un solo uso ligado a un usuario.
func (c *Client) GenerateUserToken(ctx context.Context, userID int) (*TokenResponse, error) {
	body := map[string]int{"user_id": userID}
	var out TokenResponse
	if err := c.post(ctx, "/users/generate-token/", body, &out, "Failed to generate user token"); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateAccessToken emite un access token de propósito general, no ligado a
// un usuario concreto.
func (c *Client) GenerateAccessToken(ctx context.Context) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.post(ctx, "/generate-token/", nil, &out, "Failed to generate token"); err != nil {
		return nil, err
	}
	return &out, nil
}
