// Package notify es el canal central de errores y avisos al usuario: una cola
// ordenada de toasts con severidad, autodescarte a los 5 segundos y descarte
// manual por índice. Es también el único punto que clasifica fallos del
// backend en mensajes legibles.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// Severity severidad de una entrada.
type Severity string

// Severidades soportadas.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Vida de toda entrada en cola, sin importar severidad.
const defaultTTL = 5 * time.Second

// Tope defensivo de la cola. El contrato no impone máximo; esto es
// endurecimiento local: al llegar al tope se descarta la entrada más antigua.
const maxQueued = 100

// Entry un toast encolado. Estados posibles: en cola -> removido (por timer o
// descarte manual); nada más.
type Entry struct {
	ID       string
	Severity Severity
	Title    string
	Message  string
	Details  string
	Created  time.Time
}

// Channel cola de notificaciones. Segura para múltiples goroutines (tickers
// de las vistas y handlers de eventos).
type Channel struct {
	mu      sync.Mutex
	entries []Entry
	ttl     time.Duration
	log     *logger.Logger
}

// New construye el canal con el TTL estándar de 5 segundos.
func New(log *logger.Logger) *Channel {
	return &Channel{ttl: defaultTTL, log: log}
}

// NewWithTTL permite acortar el TTL; pensado para tests.
func NewWithTTL(log *logger.Logger, ttl time.Duration) *Channel {
	return &Channel{ttl: ttl, log: log}
}

func (c *Channel) push(e Entry) {
	e.ID = uuid.NewString()
	e.Created = time.Now()

	c.mu.Lock()
	if len(c.entries) >= maxQueued {
		c.entries = c.entries[1:]
	}
	c.entries = append(c.entries, e)
	c.mu.Unlock()

	c.log.Debug().Str("severity", string(e.Severity)).Str("title", e.Title).Msg(e.Message)

	// Autodescarte: aplica a toda severidad, también a los errores.
	id := e.ID
	time.AfterFunc(c.ttl, func() { c.dismissByID(id) })
}

func (c *Channel) dismissByID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if e.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Entries snapshot de la cola en orden de llegada.
func (c *Channel) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Dismiss descarta manualmente por índice; índices fuera de rango se ignoran.
func (c *Channel) Dismiss(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.entries) {
		return
	}
	c.entries = append(c.entries[:index], c.entries[index+1:]...)
}

// Clear vacía la cola.
func (c *Channel) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// Success encola un toast de éxito.
func (c *Channel) Success(message string, title ...string) {
	c.push(Entry{Severity: SeveritySuccess, Title: firstOr(title, "Success"), Message: message})
}

// Warning encola un aviso.
func (c *Channel) Warning(message string, title ...string) {
	c.push(Entry{Severity: SeverityWarning, Title: firstOr(title, "Warning"), Message: message})
}

// Info encola un informativo.
func (c *Channel) Info(message string, title ...string) {
	c.push(Entry{Severity: SeverityInfo, Title: firstOr(title, "Information"), Message: message})
}

// HandleAPIError clasifica el error y encola el toast resultante. context
// identifica la operación intentada, ej. `Adding product "Milk"`.
func (c *Channel) HandleAPIError(err error, context string) {
	e := Classify(err, context)
	c.push(e)
}

func firstOr(vals []string, def string) string {
	if len(vals) > 0 && vals[0] != "" {
		return vals[0]
	}
	return def
}
