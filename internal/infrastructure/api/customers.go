package api

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// FetchCustomers lista todos los clientes.
func (c *Client) FetchCustomers(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	if err := c.get(ctx, "/customers/", &out, "Failed to fetch customers"); err != nil {
		return nil, err
	}
	return out, nil
}

// AddCustomer crea un cliente.
func (c *Client) AddCustomer(ctx context.Context, cu entity.Customer) (*entity.Customer, error) {
	var out entity.Customer
	if err := c.post(ctx, "/customers/", cu, &out, "Failed to add customer"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomer reemplaza el cliente completo (PUT).
func (c *Client) UpdateCustomer(ctx context.Context, cu entity.Customer) (*entity.Customer, error) {
	var out entity.Customer
	if err := c.put(ctx, fmt.Sprintf("/customers/%d/", cu.CustomerID), cu, &out, "Failed to update customer"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCustomer elimina un cliente por id.
func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/customers/%d/", id), "Failed to delete customer")
}
