// Package state mantiene las cachés por entidad del cliente: colecciones
// ordenadas (orden = respuesta del servidor) con carga total, setter crudo y
// reconciliación por identidad tras cada mutación.
package state

import "sync"

// Collection caché ordenada de una entidad, indexada por su clave de
// identidad. Segura para lectura desde los tickers de las vistas.
type Collection[T any, K comparable] struct {
	mu    sync.RWMutex
	items []T
	key   func(T) K
}

// NewCollection construye la colección con su función de identidad.
func NewCollection[T any, K comparable](key func(T) K) *Collection[T, K] {
	return &Collection[T, K]{key: key}
}

// Items copia del contenido en orden.
func (c *Collection[T, K]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len tamaño actual.
func (c *Collection[T, K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Set reemplaza el contenido completo. Es la política de Load: sin merge
// incremental, las colecciones son pequeñas y se refetchean enteras.
func (c *Collection[T, K]) Set(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

// Append reconciliación de un create: añade al final la entidad que devolvió
// el servidor (con su id asignado).
func (c *Collection[T, K]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Replace reconciliación de un update: sustituye in situ el elemento de la
// misma identidad, preservando el orden. No-op si no está.
func (c *Collection[T, K]) Replace(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := c.key(item)
	for i := range c.items {
		if c.key(c.items[i]) == k {
			c.items[i] = item
			return
		}
	}
}

// Remove reconciliación de un delete: quita el elemento por identidad.
func (c *Collection[T, K]) Remove(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.key(c.items[i]) == k {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Find busca por identidad.
func (c *Collection[T, K]) Find(k K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if c.key(c.items[i]) == k {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Patch aplica fn a cada elemento y guarda el resultado. Para parches locales
// optimistas (ej. descontar stock tras una venta).
func (c *Collection[T, K]) Patch(fn func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		c.items[i] = fn(c.items[i])
	}
}

// Prepend inserta al inicio; lo usan las entradas provisionales de auditoría,
// que se muestran más recientes primero.
func (c *Collection[T, K]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}
