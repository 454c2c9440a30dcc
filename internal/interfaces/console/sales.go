package console

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// runSales atiende el dashboard de vendedor. Devuelve true si el usuario pidió
// salir de la aplicación.
func (a *App) runSales(ctx context.Context) bool {
	sess := a.session.Current()
	fmt.Fprintf(a.out, "\n── Dashboard de ventas — %s ──\n", sess.Email)

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

		switch cmd := a.prompt("sales"); cmd {
		case "help", "?":
			fmt.Fprintln(a.out, `  products | products find | customers | sell | sales | sales filter | receipt | refresh | logout | quit`)
		case "products find":
			a.renderProducts(state.FilterProducts(a.data.Products.Items(), a.prompt("Buscar")))
		case "refresh":
			a.data.LoadAll(ctx)
		case "products":
			a.renderProducts(a.data.Products.Items())
		case "customers":
			a.renderCustomers(state.NormalizeCustomers(a.data.Customers.Items()))
		case "sales":
			a.renderSales(state.NormalizeSales(a.data.Sales.Items()))
		case "sales filter":
			a.renderFilteredSales()
		case "sell":
			a.runSell(ctx)
		case "receipt":
			a.exportReceipt()
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

// runSell flujo de venta multilínea: cantidades por producto, descuento manual
// opcional y cliente opcional. La promoción vigente sale de la configuración
// espejada; se aplica el mayor de los dos porcentajes.
func (a *App) runSell(ctx context.Context) {
	products := a.data.Products.Items()
	if len(products) == 0 {
		fmt.Fprintln(a.out, "  no hay productos cargados; usa refresh")
		return
	}
	a.renderProducts(products)

	quantities := map[int]int{}
	for {
		v := a.prompt("ID producto (vacío para terminar)")
		if v == "" {
			break
		}
		id, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintln(a.out, "  id inválido")
			continue
		}
		if _, found := a.data.Products.Find(id); !found {
			fmt.Fprintln(a.out, "  producto no encontrado")
			continue
		}
		qty, ok := a.promptInt("Cantidad")
		if !ok || qty <= 0 {
			fmt.Fprintln(a.out, "  cantidad inválida")
			continue
		}
		quantities[id] += qty
	}

	manualPct := decimal.Zero
	if v := a.prompt("Descuento manual % (vacío = 0)"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil || d.IsNegative() {
			fmt.Fprintln(a.out, "  descuento inválido")
			return
		}
		manualPct = d
	}

	promoPct := decimal.Zero
	if settings, ok := a.store.LoadSettings(); ok {
		promoPct = settings.ActivePromotionPct()
	}

	customerID := 0
	if v := a.prompt("ID cliente (vacío = mostrador)"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintln(a.out, "  id inválido")
			return
		}
		customerID = id
	}

	sess := a.session.Current()
	salesPersonID := 0
	for _, u := range a.data.Users.Items() {
		if u.Email == sess.Email {
			salesPersonID = u.ID
			break
		}
	}

	sale, err := a.crud.SubmitSale(ctx, quantities, manualPct, promoPct, customerID, salesPersonID)
	if err != nil {
		return
	}
	a.crud.AddAuditEntry("sale", sess.Email, "Sale recorded", sale.Total.String())
	fmt.Fprintf(a.out, "  Venta #%d registrada por %s\n", sale.SaleID, a.money(sale.Total))
}

// renderFilteredSales historial de ventas con filtros de lado cliente: rango
// de fechas y substring del nombre del cliente. Criterios vacíos no filtran.
func (a *App) renderFilteredSales() {
	filter := state.SaleFilter{
		DateFrom: a.prompt("Desde (YYYY-MM-DD, vacío = sin límite)"),
		DateTo:   a.prompt("Hasta (YYYY-MM-DD, vacío = sin límite)"),
		Customer: a.prompt("Cliente (vacío = todos)"),
	}
	nameOf := func(id int) string {
		if c, found := a.data.Customers.Find(id); found {
			return c.Name
		}
		return ""
	}
	views := state.FilterSales(state.NormalizeSales(a.data.Sales.Items()), filter, nameOf)
	if len(views) == 0 {
		fmt.Fprintln(a.out, "  sin ventas que cumplan el filtro")
		return
	}
	a.renderSales(views)
}

// exportReceipt genera el PDF del comprobante de una venta ya registrada y lo
// escribe en el directorio de trabajo.
func (a *App) exportReceipt() {
	id, ok := a.promptInt("ID de la venta")
	if !ok {
		return
	}
	sale, found := a.data.Sales.Find(id)
	if !found {
		fmt.Fprintln(a.out, "  venta no encontrada; usa refresh")
		return
	}

	var customer *entity.Customer
	if c, found := a.data.Customers.Find(sale.Customer); found {
		customer = &c
	}
	settings, _ := a.store.LoadSettings()

	raw, err := a.receipts.GenerateReceipt(sale, customer, settings)
	if err != nil {
		a.notify.Warning("Could not generate the receipt PDF")
		a.log.Warn().Err(err).Int("sale_id", sale.SaleID).Msg("fallo al generar comprobante")
		return
	}

	name := filepath.Join(".", fmt.Sprintf("receipt-%d.pdf", sale.SaleID))
	if err := os.WriteFile(name, raw, 0o644); err != nil {
		a.notify.Warning("Could not write the receipt PDF")
		return
	}
	a.notify.Success(fmt.Sprintf("Receipt saved to %s", name))
}
