package api

import (
	"context"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// FetchSales lista las ventas del usuario autenticado.
func (c *Client) FetchSales(ctx context.Context) ([]entity.Sale, error) {
	var out []entity.Sale
	if err := c.get(ctx, "/sales/", &out, "Failed to fetch sales"); err != nil {
		return nil, err
	}
	return out, nil
}

// AddSale registra una venta (posiblemente multilínea) en una sola llamada.
// No hay CRUD por lotes: la venta multilínea es la única excepción y viaja
// como un único payload con sus items embebidos.
func (c *Client) AddSale(ctx context.Context, s entity.Sale) (*entity.Sale, error) {
	var out entity.Sale
	if err := c.post(ctx, "/sales/", s, &out, "Failed to add sale"); err != nil {
		return nil, err
	}
	return &out, nil
}
