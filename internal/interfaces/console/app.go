// Package console es la variante completa de terminal: landing, login por rol
// y dashboards de administración y de venta sobre el estado compartido. La
// consola no habla HTTP ni toca storage: todo pasa por el session store, el hub
// de datos y el orquestador.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/Inventario-console/internal/application/crud"
	"github.com/jhoicas/Inventario-console/internal/application/notify"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/application/state"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/localstore"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-console/pkg/config"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// App consola interactiva. path emula la ruta vigente del enrutador por rol:
// los comandos de navegación lo cambian y Resolve decide qué vista corresponde.
type App struct {
	cfg      *config.Config
	log      *logger.Logger
	session  *session.Store
	apiC     *api.Client
	data     *state.Data
	crud     *crud.Orchestrator
	notify   *notify.Channel
	store    *localstore.Store
	receipts *pdf.ReceiptGenerator

	in   *bufio.Scanner
	out  io.Writer
	path string
	eof  bool
}

// New arma la consola sobre dependencias ya construidas.
func New(
	cfg *config.Config,
	log *logger.Logger,
	sess *session.Store,
	apiClient *api.Client,
	data *state.Data,
	orchestrator *crud.Orchestrator,
	nc *notify.Channel,
	store *localstore.Store,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		session:  sess,
		apiC:     apiClient,
		data:     data,
		crud:     orchestrator,
		notify:   nc,
		store:    store,
		receipts: pdf.NewReceiptGenerator(cfg.App.Name),
		in:       bufio.NewScanner(in),
		out:      out,
		path:     "/",
	}
}

// Run bucle principal: resuelve la vista para el path vigente y la atiende
// hasta que esta devuelva o el contexto muera.
func (a *App) Run(ctx context.Context) error {
	if a.session.Rehydrate() {
		sess := a.session.Current()
		a.notify.Info(fmt.Sprintf("Welcome back, %s", sess.Email))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if a.eof {
			return nil
		}

		switch a.session.Resolve(a.path) {
		case session.ViewLanding:
			a.runLanding()
		case session.ViewLogin:
			if done := a.runLogin(ctx); done {
				return nil
			}
		case session.ViewAdminDashboard:
			a.path = session.PathAdmin
			if done := a.runAdmin(ctx); done {
				return nil
			}
		case session.ViewSalesDashboard:
			a.path = session.PathSales
			if done := a.runSales(ctx); done {
				return nil
			}
		}
	}
}

func (a *App) runLanding() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "══════════════════════════════════════════")
	fmt.Fprintf(a.out, "   %s\n", a.cfg.App.Name)
	fmt.Fprintln(a.out, "   Gestión de inventario y ventas")
	fmt.Fprintln(a.out, "══════════════════════════════════════════")
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, "Presiona Enter para continuar... ")
	a.readLine()
	a.session.DismissLanding()
}

// prompt imprime la etiqueta y lee una línea.
func (a *App) prompt(label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	return a.readLine()
}

func (a *App) readLine() string {
	if !a.in.Scan() {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}
