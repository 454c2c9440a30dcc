// Package inventory es la variante reducida de terminal: solo catálogo y feed
// de avisos, sin ventas ni gestión de personal. Su rasgo distintivo es el
// sondeo periódico de /notifications/ con detección por diferencia de conteo.
package inventory

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-console/internal/application/notify"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/pkg/config"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// App variante inventario de solo consulta.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	session *session.Store
	data    *state.Data
	notify  *notify.Channel

	in  *bufio.Scanner
	out io.Writer
}

// New arma la variante inventario sobre dependencias ya construidas.
func New(cfg *config.Config, log *logger.Logger, sess *session.Store, data *state.Data, nc *notify.Channel, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		session: sess,
		data:    data,
		notify:  nc,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run bucle principal. Requiere sesión previa (rehidratada de la consola); si
// no hay, indica iniciar sesión desde la aplicación principal y termina.
func (a *App) Run(ctx context.Context) error {
	if !a.session.Rehydrate() {
		fmt.Fprintln(a.out, "No hay sesión guardada. Inicia sesión desde la aplicación de consola.")
		return nil
	}
	a.session.DismissLanding()

	sess := a.session.Current()
	fmt.Fprintf(a.out, "── Inventario — %s ──\n", sess.Email)

	if err := a.data.LoadProducts(ctx); err != nil {
		a.notify.HandleAPIError(err, "Loading products")
	}
	if err := a.data.LoadNotifications(ctx); err != nil {
		a.notify.HandleAPIError(err, "Loading notifications")
	}

	stop := a.startNotificationPoll(ctx)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		a.drainToasts()

		switch cmd := a.readCommand(); cmd {
		case "help", "?":
			fmt.Fprintln(a.out, "  products | notifications | refresh | quit")
		case "products":
			a.renderProducts()
		case "notifications":
			for _, n := range a.data.Notifications.Items() {
				fmt.Fprintf(a.out, "  [%s] %s  (%s)\n", n.Type, n.Message, n.CreatedAt)
			}
		case "refresh":
			if err := a.data.LoadProducts(ctx); err != nil {
				a.notify.HandleAPIError(err, "Loading products")
			}
		case "q", "quit", "exit":
			return nil
		case "":
		default:
			fmt.Fprintf(a.out, "  comando desconocido %q; usa help\n", cmd)
		}
	}
}

// startNotificationPoll re-descarga el feed cada intervalo y avisa solo cuando
// el conteo crece: la diferencia es el número de avisos nuevos. Devuelve la
// función de parada.
func (a *App) startNotificationPoll(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)
	last := a.data.Notifications.Len()

	go func() {
		ticker := time.NewTicker(a.cfg.Poll.NotificationInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := a.data.LoadNotifications(ctx); err != nil {
					// Sondeo de fondo: el fallo se registra sin molestar.
					a.log.Debug().Err(err).Msg("fallo el sondeo de avisos")
					continue
				}
				count := a.data.Notifications.Len()
				if count > last {
					diff := count - last
					word := "notifications"
					if diff == 1 {
						word = "notification"
					}
					a.notify.Info(fmt.Sprintf("%d new %s", diff, word))
				}
				last = count
			}
		}
	}()

	return cancel
}

func (a *App) renderProducts() {
	for _, p := range a.data.Products.Items() {
		flag := ""
		if p.IsLowStock(a.cfg.Poll.LowStockDefault) {
			flag = "  ← stock bajo"
		}
		fmt.Fprintf(a.out, "  %-4d %-30s %8s  x%d%s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Quantity, flag)
	}
}

func (a *App) drainToasts() {
	for _, e := range a.notify.Entries() {
		fmt.Fprintf(a.out, "  [%s] %s\n", e.Title, e.Message)
	}
	a.notify.Clear()
}

func (a *App) readCommand() string {
	fmt.Fprint(a.out, "inventory: ")
	if !a.in.Scan() {
		return "quit"
	}
	return strings.TrimSpace(a.in.Text())
}
