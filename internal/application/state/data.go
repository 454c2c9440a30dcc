package state

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/application/notify"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// DataAPI lecturas de colecciones que consume el hub. Lo satisface *api.Client.
type DataAPI interface {
	FetchDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
	FetchProducts(ctx context.Context) ([]entity.Product, error)
	FetchUsers(ctx context.Context) ([]entity.User, error)
	FetchCustomers(ctx context.Context) ([]entity.Customer, error)
	FetchSales(ctx context.Context) ([]entity.Sale, error)
	FetchNotifications(ctx context.Context) ([]entity.Notification, error)
	FetchAuditLogs(ctx context.Context) ([]entity.AuditLogEntry, error)
}

// Data hub de cachés por entidad del dashboard. Cada colección se carga y
// falla de forma independiente: un dashboard con datos parciales es mejor que
// uno vacío.
type Data struct {
	api    DataAPI
	notify *notify.Channel
	log    *logger.Logger

	statsMu sync.RWMutex
	stats   *entity.DashboardStats

	Products      *Collection[entity.Product, int]
	Users         *Collection[entity.User, int]
	Customers     *Collection[entity.Customer, int]
	Sales         *Collection[entity.Sale, int]
	Notifications *Collection[entity.Notification, int]
	AuditLogs     *Collection[entity.AuditLogEntry, int64]
}

// New construye el hub con colecciones vacías.
func New(apiClient DataAPI, nc *notify.Channel, log *logger.Logger) *Data {
	return &Data{
		api:           apiClient,
		notify:        nc,
		log:           log,
		Products:      NewCollection(func(p entity.Product) int { return p.ID }),
		Users:         NewCollection(func(u entity.User) int { return u.ID }),
		Customers:     NewCollection(func(c entity.Customer) int { return c.CustomerID }),
		Sales:         NewCollection(func(s entity.Sale) int { return s.SaleID }),
		Notifications: NewCollection(func(n entity.Notification) int { return n.ID }),
		AuditLogs:     NewCollection(func(a entity.AuditLogEntry) int64 { return a.ID }),
	}
}

// Stats snapshot de los contadores agregados; nil si aún no cargan.
func (d *Data) Stats() *entity.DashboardStats {
	d.statsMu.RLock()
	defer d.statsMu.RUnlock()
	if d.stats == nil {
		return nil
	}
	out := *d.stats
	return &out
}

// SetStats setter crudo.
func (d *Data) SetStats(s *entity.DashboardStats) {
	d.statsMu.Lock()
	d.stats = s
	d.statsMu.Unlock()
}

// LoadAll carga todas las colecciones del dashboard. Cada fallo se captura y
// reporta por separado; ninguna carga aborta a las demás.
func (d *Data) LoadAll(ctx context.Context) {
	if stats, err := d.api.FetchDashboardStats(ctx); err != nil {
		d.notify.HandleAPIError(err, "Loading dashboard statistics")
	} else {
		d.SetStats(stats)
	}

	if err := d.LoadProducts(ctx); err != nil {
		d.notify.HandleAPIError(err, "Loading products")
	}
	if err := d.LoadUsers(ctx); err != nil {
		d.notify.HandleAPIError(err, "Loading users")
	}
	if err := d.LoadCustomers(ctx); err != nil {
		d.notify.HandleAPIError(err, "Loading customers")
	}
	if err := d.LoadSales(ctx); err != nil {
		d.notify.HandleAPIError(err, "Loading sales data")
	}
	if err := d.LoadNotifications(ctx); err != nil {
		d.notify.HandleAPIError(err, "Loading notifications")
	}
	if err := d.LoadAuditLogs(ctx); err != nil {
		d.notify.HandleAPIError(err, "Loading audit logs")
	}

	d.notify.Success("Data loaded successfully")
}

// LoadProducts refetch total de productos.
func (d *Data) LoadProducts(ctx context.Context) error {
	items, err := d.api.FetchProducts(ctx)
	if err != nil {
		return err
	}
	d.Products.Set(items)
	return nil
}

// LoadUsers refetch total de personal.
func (d *Data) LoadUsers(ctx context.Context) error {
	items, err := d.api.FetchUsers(ctx)
	if err != nil {
		return err
	}
	d.Users.Set(items)
	return nil
}

// LoadCustomers refetch total de clientes.
func (d *Data) LoadCustomers(ctx context.Context) error {
	items, err := d.api.FetchCustomers(ctx)
	if err != nil {
		return err
	}
	d.Customers.Set(items)
	return nil
}

// LoadSales refetch total de ventas.
func (d *Data) LoadSales(ctx context.Context) error {
	items, err := d.api.FetchSales(ctx)
	if err != nil {
		return err
	}
	d.Sales.Set(items)
	return nil
}

// LoadNotifications refetch total de avisos.
func (d *Data) LoadNotifications(ctx context.Context) error {
	items, err := d.api.FetchNotifications(ctx)
	if err != nil {
		return err
	}
	d.Notifications.Set(items)
	return nil
}

// LoadAuditLogs refetch total de auditoría.
func (d *Data) LoadAuditLogs(ctx context.Context) error {
	items, err := d.api.FetchAuditLogs(ctx)
	if err != nil {
		return err
	}
	d.AuditLogs.Set(items)
	return nil
}
