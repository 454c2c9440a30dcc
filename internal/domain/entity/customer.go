package entity

// Customer cliente/comprador. Cache de solo-lectura en el cliente con inserción
// y borrado optimistas; el agregado TotalPurchases lo mantiene el backend.
type Customer struct {
	CustomerID     int    `json:"customerId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	TotalPurchases int    `json:"totalPurchases"`
	CreatedAt      string `json:"createdAt"`
}
