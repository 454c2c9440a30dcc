package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// runAdmin atiende el dashboard de administración hasta logout o salida.
// Devuelve true si el usuario pidió salir de la aplicación.
func (a *App) runAdmin(ctx context.Context) bool {
	sess := a.session.Current()
	fmt.Fprintf(a.out, "\n── Dashboard admin — %s ──\n", sess.Email)

	stop := a.startLowStockWatch(ctx)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return true
		default:
		}
		if a.eof {
			return true
		}
		a.drainToasts()

		switch cmd := a.prompt("admin"); cmd {
		case "help", "?":
			a.printAdminHelp()
		case "stats", "overview":
			a.renderStats()
		case "refresh":
			a.data.LoadAll(ctx)
		case "products":
			a.renderProducts(a.data.Products.Items())
		case "products find":
			a.renderProducts(state.FilterProducts(a.data.Products.Items(), a.prompt("Buscar")))
		case "product add":
			a.addProduct(ctx)
		case "product edit":
			a.editProduct(ctx)
		case "product del":
			a.deleteProduct(ctx)
		case "customers":
			a.renderCustomers(state.NormalizeCustomers(a.data.Customers.Items()))
		case "customers find":
			a.renderCustomers(state.NormalizeCustomers(state.FilterCustomers(a.data.Customers.Items(), a.prompt("Buscar"))))
		case "customer add":
			a.addCustomer(ctx)
		case "customer del":
			a.deleteCustomer(ctx)
		case "users":
			a.renderUsers(a.data.Users.Items())
		case "user add":
			a.addUser(ctx)
		case "user del":
			a.deleteUser(ctx)
		case "user token":
			a.generateUserToken(ctx)
		case "token":
			a.generateAccessToken(ctx)
		case "sales":
			a.renderSales(state.NormalizeSales(a.data.Sales.Items()))
		case "sales filter":
			a.renderFilteredSales()
		case "receipt":
			a.exportReceipt()
		case "audit":
			a.renderAuditLogs()
		case "notifications":
			a.renderNotifications()
		case "settings":
			a.showSettings(ctx)
		case "settings threshold":
			a.setLowStockThreshold(ctx)
		case "sell":
			// Ruta solo-sales: el enrutador redirige al dashboard admin.
			a.path = session.PathSales
			if a.session.Resolve(a.path) == session.ViewAdminDashboard {
				fmt.Fprintln(a.out, "  La venta rápida es del dashboard de vendedor.")
				a.path = session.PathAdmin
			}
		case "logout":
			actor := sess.Email
			a.session.Logout()
			a.crud.AddAuditEntry("auth", actor, "Logged out", "")
			return false
		case "q", "quit", "exit":
			return true
		case "":
		default:
			fmt.Fprintf(a.out, "  comando desconocido %q; usa help\n", cmd)
		}
	}
}

func (a *App) printAdminHelp() {
	fmt.Fprintln(a.out, `  stats | refresh | products | products find | product add | product edit | product del
  customers | customers find | customer add | customer del
  users | user add | user del | user token | token
  sales | sales filter | receipt | audit | notifications
  settings | settings threshold | logout | quit`)
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (a *App) addProduct(ctx context.Context) {
	p, ok := a.promptProduct(entity.Product{})
	if !ok {
		return
	}
	_, _ = a.crud.AddProduct(ctx, p)
}

func (a *App) editProduct(ctx context.Context) {
	id, ok := a.promptInt("ID del producto")
	if !ok {
		return
	}
	current, found := a.data.Products.Find(id)
	if !found {
		fmt.Fprintln(a.out, "  producto no encontrado en la caché local")
		return
	}
	p, ok := a.promptProduct(current)
	if !ok {
		return
	}
	p.ID = id
	_, _ = a.crud.UpdateProduct(ctx, p)
}

func (a *App) deleteProduct(ctx context.Context) {
	id, ok := a.promptInt("ID del producto")
	if !ok {
		return
	}
	_ = a.crud.DeleteProduct(ctx, id)
}

// promptProduct pide los campos del producto; Enter conserva el valor vigente.
func (a *App) promptProduct(base entity.Product) (entity.Product, bool) {
	p := base
	if v := a.prompt(fmt.Sprintf("Nombre [%s]", base.Name)); v != "" {
		p.Name = v
	}
	if p.Name == "" {
		fmt.Fprintln(a.out, "  el nombre es obligatorio")
		return p, false
	}
	if v := a.prompt(fmt.Sprintf("SKU [%s]", base.SKU)); v != "" {
		p.SKU = v
	}
	if v := a.prompt(fmt.Sprintf("Precio [%s]", base.Price)); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			fmt.Fprintln(a.out, "  precio inválido")
			return p, false
		}
		p.Price = d
	}
	if v := a.prompt(fmt.Sprintf("Cantidad [%d]", base.Quantity)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			fmt.Fprintln(a.out, "  cantidad inválida")
			return p, false
		}
		p.Quantity = n
	}
	if v := a.prompt(fmt.Sprintf("Categoría [%s]", base.Category)); v != "" {
		p.Category = v
	}
	if v := a.prompt(fmt.Sprintf("Vence (YYYY-MM-DD) [%s]", base.BestBefore)); v != "" {
		p.BestBefore = v
	}
	if v := a.prompt(fmt.Sprintf("Umbral stock bajo [%d]", base.LowStockThreshold)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			fmt.Fprintln(a.out, "  umbral inválido")
			return p, false
		}
		p.LowStockThreshold = n
	}
	return p, true
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (a *App) addCustomer(ctx context.Context) {
	c := entity.Customer{
		Name:    a.prompt("Nombre"),
		Email:   a.prompt("Email"),
		Phone:   a.prompt("Teléfono"),
		Address: a.prompt("Dirección"),
	}
	if c.Name == "" {
		fmt.Fprintln(a.out, "  el nombre es obligatorio")
		return
	}
	_, _ = a.crud.AddCustomer(ctx, c)
}

func (a *App) deleteCustomer(ctx context.Context) {
	id, ok := a.promptInt("ID del cliente")
	if !ok {
		return
	}
	_ = a.crud.DeleteCustomer(ctx, id)
}

// ── Personal ──────────────────────────────────────────────────────────────────

func (a *App) addUser(ctx context.Context) {
	email := a.prompt("Email")
	roleStr := a.prompt("Rol (admin/sales)")
	role, err := entity.ParseRole(roleStr)
	if err != nil {
		fmt.Fprintln(a.out, "  rol inválido")
		return
	}
	created, err := a.crud.AddUser(ctx, entity.User{Email: email, Role: role, Active: true})
	if err != nil {
		return
	}
	if created.Token != "" {
		// Revelado único: el token no se vuelve a mostrar completo.
		fmt.Fprintf(a.out, "  Access token para %s: %s\n", created.User.Email, created.Token)
		fmt.Fprintln(a.out, "  Compártelo ahora; cada token sirve para un solo registro.")
	}
}

func (a *App) deleteUser(ctx context.Context) {
	id, ok := a.promptInt("ID del usuario")
	if !ok {
		return
	}
	_ = a.crud.DeleteUser(ctx, id)
}

func (a *App) generateUserToken(ctx context.Context) {
	id, ok := a.promptInt("ID del usuario")
	if !ok {
		return
	}
	token, err := a.crud.GenerateUserToken(ctx, id)
	if err != nil {
		return
	}
	fmt.Fprintf(a.out, "  Token: %s\n", token)
}

func (a *App) generateAccessToken(ctx context.Context) {
	token, err := a.crud.GenerateAccessToken(ctx)
	if err != nil {
		return
	}
	fmt.Fprintf(a.out, "  Token: %s\n", token)
}

// ── Configuración ─────────────────────────────────────────────────────────────

// showSettings trae la configuración del backend y la espeja en disco.
func (a *App) showSettings(ctx context.Context) {
	settings, err := a.apiC.FetchSystemSettings(ctx)
	if err != nil {
		a.notify.HandleAPIError(err, "Loading system settings")
		return
	}
	if err := a.store.SaveSettings(*settings); err != nil {
		a.log.Warn().Err(err).Msg("no se pudo espejar la configuración")
	}
	fmt.Fprintf(a.out, "  Moneda: %s   IVA: %s%%   Umbral stock bajo: %d   Sesión: %d min\n",
		settings.CurrencySymbol, settings.TaxRate, settings.LowStockThreshold, settings.SessionTimeout)
	for _, r := range settings.DiscountRules {
		state := "inactiva"
		if r.IsActive {
			state = "activa"
		}
		fmt.Fprintf(a.out, "  Regla %s: %s %s (%s)\n", r.Name, r.Value, r.Type, state)
	}
}

func (a *App) setLowStockThreshold(ctx context.Context) {
	settings, err := a.apiC.FetchSystemSettings(ctx)
	if err != nil {
		a.notify.HandleAPIError(err, "Loading system settings")
		return
	}
	n, ok := a.promptInt("Nuevo umbral global")
	if !ok {
		return
	}
	settings.LowStockThreshold = n
	updated, err := a.apiC.UpdateSystemSettings(ctx, *settings)
	if err != nil {
		a.notify.HandleAPIError(err, "Updating system settings")
		return
	}
	if err := a.store.SaveSettings(*updated); err != nil {
		a.log.Warn().Err(err).Msg("no se pudo espejar la configuración")
	}
	a.notify.Success("Settings updated successfully!")
}

func (a *App) promptInt(label string) (int, bool) {
	v := a.prompt(label)
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintln(a.out, "  número inválido")
		return 0, false
	}
	return n, true
}
