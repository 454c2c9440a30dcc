package notify

import (
	"errors"
	"strings"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/api"
)

// kind bucket de la taxonomía de errores de cara al usuario.
type kind int

const (
	kindConnection kind = iota
	kindAuth
	kindPermission
	kindNotFound
	kindServer
	kindPassthrough
)

// userFacing texto fijo por bucket.
var userFacing = map[kind]struct{ title, message string }{
	kindConnection: {"Connection Error", "Unable to connect to the server. Please check your internet connection."},
	kindAuth:       {"Authentication Error", "Your session has expired. Please log in again."},
	kindPermission: {"Permission Error", "You do not have permission to perform this action."},
	kindNotFound:   {"Not Found", "The requested resource was not found."},
	kindServer:     {"Server Error", "A server error occurred. Please try again later."},
}

// substringFallback mapeo por substring, solo para errores sin código de
// estado (backends cuyo texto es el único dato). Es el último recurso: la
// clasificación primaria va por código para no depender de la redacción.
var substringFallback = []struct {
	needle string
	k      kind
}{
	{"Failed to fetch", kindConnection},
	{"401", kindAuth},
	{"Unauthorized", kindAuth},
	{"403", kindPermission},
	{"Forbidden", kindPermission},
	{"404", kindNotFound},
	{"Not found", kindNotFound},
	{"500", kindServer},
	{"Internal Server Error", kindServer},
}

func classifyKind(err error) kind {
	// Clasificación primaria por centinela de la taxonomía: los *api.HTTPError
	// se mapean por código de estado vía su método Is.
	switch {
	case errors.Is(err, domain.ErrConnection):
		return kindConnection
	case errors.Is(err, domain.ErrAuth):
		return kindAuth
	case errors.Is(err, domain.ErrPermission):
		return kindPermission
	case errors.Is(err, domain.ErrNotFound):
		return kindNotFound
	case errors.Is(err, domain.ErrServer):
		return kindServer
	}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		// Código conocido pero sin bucket (400, 409...): pasa el mensaje tal cual.
		return kindPassthrough
	}

	msg := err.Error()
	for _, f := range substringFallback {
		if strings.Contains(msg, f.needle) {
			return f.k
		}
	}
	return kindPassthrough
}

// Classify convierte un error del backend en la entrada de toast a encolar.
// Los errores no reconocidos pasan su mensaje original con el contexto de la
// operación como detalle.
func Classify(err error, context string) Entry {
	k := classifyKind(err)
	if k == kindPassthrough {
		return Entry{
			Severity: SeverityError,
			Title:    "Error",
			Message:  err.Error(),
			Details:  "Context: " + context,
		}
	}
	uf := userFacing[k]
	return Entry{Severity: SeverityError, Title: uf.title, Message: uf.message}
}
