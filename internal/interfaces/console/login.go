package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// runLogin atiende la vista de login. Devuelve true si el usuario pidió salir.
func (a *App) runLogin(ctx context.Context) bool {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "── Iniciar sesión ──")
	fmt.Fprintln(a.out, "  1) Administrador")
	fmt.Fprintln(a.out, "  2) Vendedor")
	fmt.Fprintln(a.out, "  3) Registrar administrador")
	fmt.Fprintln(a.out, "  q) Salir")

	switch choice := a.prompt("Opción"); choice {
	case "1":
		a.doLogin(ctx, entity.RoleAdmin)
	case "2":
		a.doLogin(ctx, entity.RoleSales)
	case "3":
		a.doRegister(ctx)
	case "q", "quit", "exit":
		return true
	}
	return a.eof
}

// doRegister alta de administrador. El registro ya devuelve un token de sesión,
// pero se encadena un login normal para que el session store sea el único que
// fija y persiste la tripleta.
func (a *App) doRegister(ctx context.Context) {
	email := a.prompt("Email")
	password := a.prompt("Password")

	if _, err := a.apiC.RegisterAdmin(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "\n  ✗ %s\n", friendlyAuthError(err))
		return
	}
	a.notify.Success("Admin account created!")

	if _, err := a.session.Login(ctx, email, password, entity.RoleAdmin, ""); err != nil {
		fmt.Fprintf(a.out, "\n  ✗ %s\n", friendlyAuthError(err))
		return
	}
	a.data.LoadAll(ctx)
	a.drainToasts()
}

func (a *App) doLogin(ctx context.Context, role entity.Role) {
	email := a.prompt("Email")
	password := a.prompt("Password")
	accessToken := ""
	if role == entity.RoleSales {
		accessToken = a.prompt("Access token (vacío si ya tienes cuenta)")
	}

	if _, err := a.session.Login(ctx, email, password, role, accessToken); err != nil {
		fmt.Fprintf(a.out, "\n  ✗ %s\n", friendlyAuthError(err))
		return
	}

	a.notify.Success("Login successful!")
	a.data.LoadAll(ctx)
	a.drainToasts()
}

// friendlyAuthError traduce los errores de autenticación conocidos a texto
// accionable. El reconocimiento es por substring: los mensajes exactos son
// contrato del backend y el resto se muestra tal cual llegó.
func friendlyAuthError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Invalid token"):
		return "El access token no es válido. Pide uno nuevo a tu administrador."
	case strings.Contains(msg, "already been used"):
		return "Ese access token ya fue usado. Cada token sirve para un solo registro; pide otro."
	case strings.Contains(msg, "Invalid credentials"):
		return "Email o contraseña incorrectos."
	default:
		return msg
	}
}
