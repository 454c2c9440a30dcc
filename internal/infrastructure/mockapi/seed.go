package mockapi

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

// Seed carga un juego de datos de demostración: un admin (admin@local / admin),
// catálogo corto, un par de clientes y un aviso de bienvenida. Pensado para
// levantar el backend simulado y entrar directo desde la consola.
func (s *Store) Seed() {
	if _, err := s.CreateAdmin("admin@local", "admin"); err != nil {
		return // ya sembrado
	}

	for _, p := range []entity.Product{
		{Name: "Arroz 1kg", SKU: "GR-001", Price: decimal.NewFromFloat(2.50), Quantity: 120, Category: "Granos", BestBefore: "2027-01-15"},
		{Name: "Frijol negro 1kg", SKU: "GR-002", Price: decimal.NewFromFloat(3.10), Quantity: 80, Category: "Granos", BestBefore: "2026-11-30"},
		{Name: "Aceite vegetal 900ml", SKU: "AB-010", Price: decimal.NewFromFloat(4.75), Quantity: 8, Category: "Abarrotes", BestBefore: "2026-10-01", LowStockThreshold: 12},
		{Name: "Leche entera 1L", SKU: "LA-021", Price: decimal.NewFromFloat(1.80), Quantity: 45, Category: "Lácteos", BestBefore: "2026-09-20"},
	} {
		s.CreateProduct(p)
	}

	for _, c := range []entity.Customer{
		{Name: "María Pérez", Email: "maria@example.com", Phone: "555-0101", Address: "Av. Central 12"},
		{Name: "Comedor El Buen Sabor", Email: "compras@buensabor.example", Phone: "555-0188", Address: "Calle 8 #45"},
	} {
		s.CreateCustomer(c)
	}

	s.PushNotification("Welcome! The mock backend is running with demo data.", "info")
}
