package api

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// FetchProducts lista todos los productos. El orden de la respuesta es el
// orden de la colección local.
func (c *Client) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.get(ctx, "/products/", &out, "Failed to fetch products"); err != nil {
		return nil, err
	}
	return out, nil
}

// AddProduct crea un producto y devuelve la entidad con id asignado por el
// servidor.
func (c *Client) AddProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	var out entity.Product
	if err := c.post(ctx, "/products/", p, &out, "Failed to add product"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct reemplaza el producto completo (PUT).
func (c *Client) UpdateProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	var out entity.Product
	if err := c.put(ctx, fmt.Sprintf("/products/%d/", p.ID), p, &out, "Failed to update product"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct elimina un producto por id.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/products/%d/", id), "Failed to delete product")
}
