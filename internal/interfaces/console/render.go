package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Inventario-console/internal/application/notify"
	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// Printer con separadores de miles para montos en pantalla.
var amounts = message.NewPrinter(language.English)

// money monto con símbolo de moneda, dos decimales y separador de miles.
func (a *App) money(d decimal.Decimal) string {
	symbol := "$"
	if s, ok := a.store.LoadSettings(); ok && s.CurrencySymbol != "" {
		symbol = s.CurrencySymbol
	}
	return symbol + amounts.Sprintf("%v", number.Decimal(
		d.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// drainToasts imprime y descarta los toasts pendientes del canal.
func (a *App) drainToasts() {
	entries := a.notify.Entries()
	if len(entries) == 0 {
		return
	}
	for _, e := range entries {
		mark := "•"
		switch e.Severity {
		case notify.SeverityError:
			mark = "✗"
		case notify.SeverityWarning:
			mark = "!"
		case notify.SeveritySuccess:
			mark = "✓"
		}
		if e.Details != "" {
			fmt.Fprintf(a.out, "  %s [%s] %s (%s)\n", mark, e.Title, e.Message, e.Details)
		} else {
			fmt.Fprintf(a.out, "  %s [%s] %s\n", mark, e.Title, e.Message)
		}
	}
	a.notify.Clear()
}

func (a *App) renderProducts(products []entity.Product) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tSKU\tPRECIO\tSTOCK\tCATEGORÍA\tVENCE")
	for _, p := range products {
		flag := ""
		if p.IsLowStock(a.cfg.Poll.LowStockDefault) {
			flag = " (bajo)"
		}
		if p.Discontinued {
			flag = " (descontinuado)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d%s\t%s\t%s\n",
			p.ID, p.Name, p.SKU, a.money(p.Price), p.Quantity, flag, p.Category, p.BestBefore)
	}
	w.Flush()
}

func (a *App) renderCustomers(customers []state.CustomerView) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tTELÉFONO\tCOMPRAS\tGASTO EST.\tESTADO\tALTA")
	for _, c := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			c.CustomerID, c.Name, c.Email, c.Phone, c.TotalPurchases, a.money(c.TotalSpent), c.Status, c.JoinDate)
	}
	w.Flush()
}

func (a *App) renderSales(sales []state.SaleView) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCTO\tCANT\tP.UNIT\tDESC\tTOTAL\tFECHA\tESTADO")
	for _, s := range sales {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			s.SaleID, s.Product, s.Quantity, a.money(s.UnitPrice), a.money(s.Discount), a.money(s.Total), s.Date, s.Status)
	}
	w.Flush()
}

func (a *App) renderUsers(users []entity.User) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tROL\tTOKEN\tACTIVO")
	for _, u := range users {
		token := u.Token
		if token == "" {
			token = "—"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", u.ID, u.Email, u.Role, token, u.Active)
	}
	w.Flush()
}

func (a *App) renderStats() {
	stats := a.data.Stats()
	if stats == nil {
		fmt.Fprintln(a.out, "  (estadísticas aún no cargadas; usa refresh)")
		return
	}
	fmt.Fprintf(a.out, "  Productos: %d   Ventas: %d   Ingresos: %s   Vendedores activos: %d\n",
		stats.TotalItems, stats.TotalSales, a.money(stats.TotalRevenue), stats.ActiveSalesPersonnel)
	if len(stats.LowStockItems) > 0 {
		fmt.Fprintln(a.out, "  Stock bajo:")
		for _, it := range stats.LowStockItems {
			fmt.Fprintf(a.out, "    - %s (%s): %d\n", it.Name, it.SKU, it.Quantity)
		}
	}
}

func (a *App) renderNotifications() {
	for _, n := range a.data.Notifications.Items() {
		fmt.Fprintf(a.out, "  [%s] %s  (%s)\n", n.Type, n.Message, n.CreatedAt)
	}
}

func (a *App) renderAuditLogs() {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FECHA\tTIPO\tUSUARIO\tACCIÓN\tIP\tDETALLE")
	for _, e := range a.data.AuditLogs.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp, e.Type, e.User, e.Action, e.IPAddress, e.Details)
	}
	w.Flush()
}
