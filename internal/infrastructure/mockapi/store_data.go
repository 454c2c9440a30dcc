package mockapi

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// ── Productos ─────────────────────────────────────────────────────────────────

// Products snapshot del catálogo.
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// CreateProduct asigna id y añade al catálogo.
func (s *Store) CreateProduct(p entity.Product) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, p)
	return p
}

// UpdateProduct reemplazo completo por id.
func (s *Store) UpdateProduct(p entity.Product) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return p, true
		}
	}
	return entity.Product{}, false
}

// DeleteProduct borra por id.
func (s *Store) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// Customers snapshot de la cartera.
func (s *Store) Customers() []entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// CreateCustomer asigna id y fecha de alta.
func (s *Store) CreateCustomer(c entity.Customer) entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.CustomerID = s.nextCustomerID
	s.nextCustomerID++
	if c.CreatedAt == "" {
		c.CreatedAt = time.Now().Format("2006-01-02")
	}
	s.customers = append(s.customers, c)
	return c
}

// UpdateCustomer reemplazo completo por id.
func (s *Store) UpdateCustomer(c entity.Customer) (entity.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].CustomerID == c.CustomerID {
			s.customers[i] = c
			return c, true
		}
	}
	return entity.Customer{}, false
}

// DeleteCustomer borra por id.
func (s *Store) DeleteCustomer(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].CustomerID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return true
		}
	}
	return false
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// Sales snapshot del historial de ventas.
func (s *Store) Sales() []entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// CreateSale registra la venta y aplica sus efectos en cascada:
//   - valida y descuenta stock línea por línea (sin stock suficiente = rechazo
//     completo, nada queda a medias)
//   - incrementa totalPurchases del cliente
//   - emite un aviso de stock bajo por cada producto que cruce su umbral
func (s *Store) CreateSale(sale entity.Sale) (entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validación previa: todo o nada.
	for _, it := range sale.Items {
		p := s.findProduct(it.ProductID)
		if p == nil {
			return entity.Sale{}, fmt.Errorf("product %d not found", it.ProductID)
		}
		if p.Quantity < it.Quantity {
			return entity.Sale{}, fmt.Errorf("Insufficient stock for %s", p.Name)
		}
	}

	for _, it := range sale.Items {
		p := s.findProduct(it.ProductID)
		p.Quantity -= it.Quantity
		if p.Quantity <= p.EffectiveThreshold(s.settings.LowStockThreshold) && !p.Discontinued {
			s.pushNotification(fmt.Sprintf("Low stock alert: %s (%d left)", p.Name, p.Quantity), "warning")
		}
	}

	for i := range s.customers {
		if s.customers[i].CustomerID == sale.Customer {
			s.customers[i].TotalPurchases++
		}
	}

	sale.SaleID = s.nextSaleID
	s.nextSaleID++
	if sale.Date == "" {
		sale.Date = time.Now().Format("2006-01-02")
	}
	if sale.Status == "" {
		sale.Status = entity.SaleStatusCompleted
	}
	s.sales = append(s.sales, sale)
	return sale, nil
}

func (s *Store) findProduct(id int) *entity.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}

// ── Avisos y auditoría ────────────────────────────────────────────────────────

// Notifications feed más reciente primero.
func (s *Store) Notifications() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// pushNotification requiere mu tomado.
func (s *Store) pushNotification(message, typ string) {
	n := entity.Notification{
		ID:        s.nextNotifID,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	s.nextNotifID++
	s.notifications = append([]entity.Notification{n}, s.notifications...)
}

// PushNotification inserta un aviso al frente del feed.
func (s *Store) PushNotification(message, typ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushNotification(message, typ)
}

// AuditLogs registro más reciente primero.
func (s *Store) AuditLogs() []entity.AuditLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.AuditLogEntry, len(s.auditLogs))
	copy(out, s.auditLogs)
	return out
}

// AppendAudit registra una acción en el log de auditoría.
func (s *Store) AppendAudit(logType, user, action, ip, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := entity.AuditLogEntry{
		ID:        s.nextAuditID,
		Type:      logType,
		User:      user,
		Action:    action,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		IPAddress: ip,
		Details:   details,
	}
	s.nextAuditID++
	s.auditLogs = append([]entity.AuditLogEntry{e}, s.auditLogs...)
}

// ── Configuración y estadísticas ──────────────────────────────────────────────

// Settings blob de configuración vigente.
func (s *Store) Settings() entity.SystemSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SaveSettings reemplaza el blob completo.
func (s *Store) SaveSettings(cfg entity.SystemSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = cfg
}

// Stats agrega los contadores del dashboard sobre el estado actual.
func (s *Store) Stats() entity.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	revenue := decimal.Zero
	for _, sale := range s.sales {
		revenue = revenue.Add(sale.Total)
	}

	active := 0
	for _, a := range s.accounts {
		if a.Role == entity.RoleSales && a.Active {
			active++
		}
	}

	low := []entity.LowStockItem{}
	for _, p := range s.products {
		if p.IsLowStock(s.settings.LowStockThreshold) {
			low = append(low, entity.LowStockItem{ID: p.ID, Name: p.Name, Quantity: p.Quantity, SKU: p.SKU})
		}
	}

	return entity.DashboardStats{
		TotalItems:           len(s.products),
		TotalSales:           len(s.sales),
		TotalRevenue:         revenue,
		ActiveSalesPersonnel: active,
		LowStockItems:        low,
	}
}
