package session

import "github.com/jhoicas/Inventario-console/internal/domain/entity"

// View vista de nivel superior que la aplicación debe renderizar.
type View int

// Vistas posibles.
const (
	ViewLanding View = iota
	ViewLogin
	ViewAdminDashboard
	ViewSalesDashboard
)

// Paths con dashboard propio; cualquier otro path es "no coincidente" y
// redirige al dashboard del rol vigente.
const (
	PathAdmin = "/admin"
	PathSales = "/sales"
)

// Resolve decide la vista para un path, evaluando de arriba hacia abajo con
// primera coincidencia:
//
//  1. flag de página de inicio activo -> landing
//  2. sin sesión                      -> login (cualquier path)
//  3. rol admin                       -> dashboard admin (incluye redirigir
//     desde rutas solo-sales)
//  4. rol sales                       -> dashboard sales (ídem desde admin)
//  5. path no coincidente             -> dashboard del rol
//
// El switch sobre el rol es exhaustivo: añadir un rol nuevo rompe compilación
// aquí antes que en producción.
func (s *Store) Resolve(path string) View {
	s.mu.RLock()
	landing := s.showLanding
	sess := s.current
	s.mu.RUnlock()

	if landing {
		return ViewLanding
	}
	if sess == nil {
		return ViewLogin
	}

	switch sess.Role {
	case entity.RoleAdmin:
		// Toda ruta, incluida /sales, termina en el dashboard admin.
		return ViewAdminDashboard
	case entity.RoleSales:
		return ViewSalesDashboard
	case entity.RoleViewer:
		// El rol de solo lectura no tiene dashboard en esta aplicación.
		return ViewLogin
	default:
		return ViewLogin
	}
}
