package console

import (
	"context"
	"fmt"
	"time"
)

// startLowStockWatch arranca el ticker de stock bajo: cada intervalo revisa la
// caché local de productos (sin tocar la red) y avisa una sola vez por producto
// que cruza su umbral. Devuelve la función de parada.
func (a *App) startLowStockWatch(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)
	warned := map[int]bool{}

	check := func() {
		threshold := a.cfg.Poll.LowStockDefault
		if settings, ok := a.store.LoadSettings(); ok && settings.LowStockThreshold > 0 {
			threshold = settings.LowStockThreshold
		}
		for _, p := range a.data.Products.Items() {
			if p.IsLowStock(threshold) {
				if !warned[p.ID] {
					warned[p.ID] = true
					a.notify.Warning(fmt.Sprintf("Low stock: %s (%d left)", p.Name, p.Quantity))
				}
			} else {
				// El producto se repuso; volver a avisar si baja de nuevo.
				delete(warned, p.ID)
			}
		}
	}

	go func() {
		ticker := time.NewTicker(a.cfg.Poll.LowStockInterval)
		defer ticker.Stop()
		check()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				check()
			}
		}
	}()

	return cancel
}
