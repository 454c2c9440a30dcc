// Package crud orquesta las mutaciones contra el backend y su reconciliación
// con las cachés locales: create añade la entidad devuelta por el servidor,
// update la sustituye in situ, delete la quita. Todo o nada: un fallo deja la
// colección local intacta y llega al canal de notificaciones con el contexto
// de la operación y la etiqueta humana de la entidad.
package crud

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-console/internal/application/notify"
	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// API mutaciones que consume el orquestador. Lo satisface *api.Client.
type API interface {
	AddProduct(ctx context.Context, p entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, p entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	AddCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error

	AddUser(ctx context.Context, u entity.User) (*entity.User, error)
	UpdateUser(ctx context.Context, u entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id int) error
	GenerateUserToken(ctx context.Context, userID int) (*api.TokenResponse, error)
	GenerateAccessToken(ctx context.Context) (*api.TokenResponse, error)

	AddSale(ctx context.Context, s entity.Sale) (*entity.Sale, error)
}

// Orchestrator aplica mutaciones de una entidad a la vez; no hay CRUD por
// lotes (la venta multilínea de sale.go es la única excepción).
type Orchestrator struct {
	api    API
	data   *state.Data
	notify *notify.Channel
	log    *logger.Logger
}

// New construye el orquestador.
func New(apiClient API, data *state.Data, nc *notify.Channel, log *logger.Logger) *Orchestrator {
	return &Orchestrator{api: apiClient, data: data, notify: nc, log: log}
}

// ── Products ──────────────────────────────────────────────────────────────────

// AddProduct crea y reconcilia (append de la entidad con id del servidor).
func (o *Orchestrator) AddProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	created, err := o.api.AddProduct(ctx, p)
	if err != nil {
		o.notify.HandleAPIError(err, fmt.Sprintf("Adding product %q", p.Name))
		return nil, err
	}
	o.data.Products.Append(*created)
	o.notify.Success(fmt.Sprintf("Product %q has been added successfully.", p.Name))
	return created, nil
}

// UpdateProduct actualiza con payload completo y sustituye in situ.
func (o *Orchestrator) UpdateProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	updated, err := o.api.UpdateProduct(ctx, p)
	if err != nil {
		o.notify.HandleAPIError(err, fmt.Sprintf("Updating product %q", p.Name))
		return nil, err
	}
	o.data.Products.Replace(*updated)
	o.notify.Success(fmt.Sprintf("Product %q has been updated successfully.", p.Name))
	return updated, nil
}

// DeleteProduct elimina y quita de la caché; en fallo no toca nada.
func (o *Orchestrator) DeleteProduct(ctx context.Context, id int) error {
	label := ""
	if p, ok := o.data.Products.Find(id); ok {
		label = p.Name
	}
	if err := o.api.DeleteProduct(ctx, id); err != nil {
		o.notify.HandleAPIError(err, fmt.Sprintf("Deleting product %q", label))
		return err
	}
	o.data.Products.Remove(id)
	o.notify.Success(fmt.Sprintf("Product %q has been deleted successfully.", label))
	return nil
}

// ── Customers ─────────────────────────────────────────────────────────────────

// AddCustomer crea y reconcilia.
func (o *Orchestrator) AddCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error) {
	created, err := o.api.AddCustomer(ctx, c)
	if err != nil {
		o.notify.HandleAPIError(err, fmt.Sprintf("Adding customer %q", c.Name))
		return nil, err
	}
	o.data.Customers.Append(*created)
	o.notify.Success(fmt.Sprintf("Customer %q has been added successfully.", c.Name))
	return created, nil
}

// UpdateCustomer actualiza y sustituye in situ.
func (o *Orchestrator) UpdateCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error) {
	updated, err := o.api.UpdateCustomer(ctx, c)
	if err != nil {
		o.notify.HandleAPIError(err, fmt.Sprintf("Updating customer %q", c.Name))
		return nil, err
	}
	o.data.Customers.Replace(*updated)
	o.notify.Success(fmt.Sprintf("Customer %q has been updated successfully.", c.Name))
	return updated, nil
}

// DeleteCustomer elimina y quita de la caché.
func (o *Orchestrator) DeleteCustomer(ctx context.Context, id int) error {
	label := ""
	if c, ok := o.data.Customers.Find(id); ok {
		label = c.Name
	}
	if err := o.api.DeleteCustomer(ctx, id); err != nil {
		o.notify.HandleAPIError(err, fmt.Sprintf("Deleting customer %q", label))
		return err
	}
	o.data.Customers.Remove(id)
	o.notify.Success(fmt.Sprintf("Customer %q has been deleted successfully.", label))
	return nil
}

// ── Users ─────────────────────────────────────────────────────────────────────

// UserCreated resultado de un alta de personal. Token no vacío significa que
// hay un access token de un solo uso para mostrar en el diálogo de revelado.
type UserCreated struct {
	User  entity.User
	Token string
}

// AddUser crea el usuario y, si su rol es sales, emite de inmediato su access
// token. El alta y la emisión son resultados independientes: si la emisión
// falla, el usuario queda creado y el fallo solo se registra en el log.
func (o *Orchestrator) AddUser(ctx context.Context, u entity.User) (*UserCreated, error) {
	created, err := o.api.AddUser(ctx, u)
	if err != nil {
		o.notify.HandleAPIError(err, fmt.Sprintf("Adding user %q", u.Email))
		return nil, err
	}
	o.data.Users.Append(*created)

	out := &UserCreated{User: *created}
	if created.Role == entity.RoleSales {
		resp, tokenErr := o.api.GenerateUserToken(ctx, created.ID)
		if tokenErr != nil {
			o.log.Warn().Err(tokenErr).Int("user_id", created.ID).Msg("no se pudo auto-generar el access token")
		} else {
			out.Token = resp.Token
			withToken := *created
			withToken.Token = resp.Token
			o.data.Users.Replace(withToken)
			out.User = withToken
		}
	}

	o.notify.Success(fmt.Sprintf("User %q has been added successfully.", u.Email))
	return out, nil
}

// UpdateUser actualiza y sustituye in situ.
func (o *Orchestrator) UpdateUser(ctx context.Context, u entity.User) (*entity.User, error) {
	updated, err := o.api.UpdateUser(ctx, u)
	if err != nil {
		o.notify.HandleAPIError(err, fmt.Sprintf("Updating user %q", u.Email))
		return nil, err
	}
	o.data.Users.Replace(*updated)
	o.notify.Success(fmt.Sprintf("User %q has been updated successfully.", u.Email))
	return updated, nil
}

// DeleteUser elimina y quita de la caché.
func (o *Orchestrator) DeleteUser(ctx context.Context, id int) error {
	label := ""
	if u, ok := o.data.Users.Find(id); ok {
		label = u.Email
	}
	if err := o.api.DeleteUser(ctx, id); err != nil {
		o.notify.HandleAPIError(err, fmt.Sprintf("Deleting user %q", label))
		return err
	}
	o.data.Users.Remove(id)
	o.notify.Success(fmt.Sprintf("User %q has been deleted successfully.", label))
	return nil
}

// GenerateUserToken emisión manual desde la vista de personal.
func (o *Orchestrator) GenerateUserToken(ctx context.Context, userID int) (string, error) {
	resp, err := o.api.GenerateUserToken(ctx, userID)
	if err != nil {
		o.notify.HandleAPIError(err, "Generating user token")
		return "", err
	}
	o.notify.Success("Token generated successfully!")
	return resp.Token, nil
}

// GenerateAccessToken emisión de un token de propósito general.
func (o *Orchestrator) GenerateAccessToken(ctx context.Context) (string, error) {
	resp, err := o.api.GenerateAccessToken(ctx)
	if err != nil {
		o.notify.HandleAPIError(err, "Generating access token")
		return "", err
	}
	o.notify.Success("Token generated successfully!")
	return resp.Token, nil
}
