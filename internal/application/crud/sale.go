package crud

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// BuildSale arma el payload de una venta multilínea a partir de las cantidades
// elegidas por producto. Las líneas con cantidad no positiva se filtran. El
// porcentaje aplicado es el mayor entre el descuento manual y la promoción
// vigente; cada línea lleva su descuento ya calculado y su total neto, y el
// total agregado es la suma de los netos.
func BuildSale(products []entity.Product, quantities map[int]int, manualPct, promoPct decimal.Decimal, customerID, salesPersonID int) (entity.Sale, error) {
	appliedPct := manualPct
	if promoPct.GreaterThan(appliedPct) {
		appliedPct = promoPct
	}

	var items []entity.SaleItem
	total := decimal.Zero
	for _, p := range products {
		qty := quantities[p.ID]
		if qty <= 0 {
			continue
		}
		gross := p.Price.Mul(decimal.NewFromInt(int64(qty)))
		discount := decimal.Zero
		if appliedPct.GreaterThan(decimal.Zero) {
			discount = gross.Mul(appliedPct).Div(hundred)
		}
		items = append(items, entity.SaleItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    qty,
			UnitPrice:   p.Price,
			Total:       gross.Sub(discount),
			Discount:    discount,
		})
		total = total.Add(gross.Sub(discount))
	}

	if len(items) == 0 {
		return entity.Sale{}, fmt.Errorf("%w: no items selected", domain.ErrValidation)
	}

	return entity.Sale{
		Customer:    customerID,
		Items:       items,
		Total:       total,
		Status:      entity.SaleStatusCompleted,
		SalesPerson: salesPersonID,
	}, nil
}

// SubmitSale construye y envía la venta como un único create. Solo tras el
// éxito descuenta del stock local las cantidades vendidas: es un parche
// optimista no transaccional, y si diverge de la contabilidad real del
// servidor se corrige con el próximo Load completo de productos.
func (o *Orchestrator) SubmitSale(ctx context.Context, quantities map[int]int, manualPct, promoPct decimal.Decimal, customerID, salesPersonID int) (*entity.Sale, error) {
	sale, err := BuildSale(o.data.Products.Items(), quantities, manualPct, promoPct, customerID, salesPersonID)
	if err != nil {
		o.notify.HandleAPIError(err, "Please select items to sell")
		return nil, err
	}

	created, err := o.api.AddSale(ctx, sale)
	if err != nil {
		o.notify.HandleAPIError(err, "Failed to process sale")
		return nil, err
	}

	o.applySaleToStock(quantities)

	// Refrescar la lista de ventas; si falla, la venta ya está hecha y solo
	// se reporta el refetch.
	if err := o.data.LoadSales(ctx); err != nil {
		o.notify.HandleAPIError(err, "Loading sales data")
	}

	o.notify.Success("Sale completed successfully!")
	o.log.Info().Int("sale_id", created.SaleID).Str("total", created.Total.String()).Msg("venta registrada")
	return created, nil
}

// applySaleToStock parche local explícito: descuenta la cantidad vendida de
// cada producto afectado. La caché queda potencialmente desfasada hasta el
// siguiente refetch completo; esa ventana es deliberada y documentada.
func (o *Orchestrator) applySaleToStock(quantities map[int]int) {
	o.data.Products.Patch(func(p entity.Product) entity.Product {
		if sold := quantities[p.ID]; sold > 0 {
			p.Quantity -= sold
		}
		return p
	})
}
