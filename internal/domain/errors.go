// Package domain define las entidades y errores compartidos por toda la suite
// cliente. El backend es el dueño de los datos; aquí solo viven cachés por sesión
// y la tripleta de sesión persistida localmente.
package domain

import "errors"

// Taxonomía de errores del cliente (sin dependencias externas). Los fallos
// HTTP se mapean a estos centinelas vía errors.Is (el tipo de error del
// cliente REST implementa Is contra ellos); el canal de notificaciones es el
// único punto que los convierte en mensajes de cara al usuario.
var (
	ErrConnection = errors.New("no se pudo conectar con el servidor")
	ErrAuth       = errors.New("sesión expirada o credenciales inválidas")
	ErrPermission = errors.New("operación no permitida para el rol actual")
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrServer     = errors.New("error interno del servidor")
	ErrValidation = errors.New("entrada inválida") // checks locales, nunca viaja al backend
)
