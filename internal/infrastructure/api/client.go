// Package api implementa el cliente REST contra el backend de inventario.
// Es el equivalente HTTP de la capa de repositorios: un archivo por recurso,
// paths del contrato con slash final (estilo Django) y errores tipados.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// TokenProvider entrega el bearer token vigente; cadena vacía = sin sesión.
// Lo implementa el session store para que el cliente nunca lea storage directo.
type TokenProvider interface {
	Token() string
}

// HTTPError fallo de una llamada al backend. StatusCode 0 significa fallo de
// red (el servidor nunca respondió).
type HTTPError struct {
	StatusCode int
	Message    string // mensaje legible extraído del cuerpo JSON de error
	Fallback   string // "Failed to <verbo> <recurso>", fijo por endpoint
	Err        error  // causa de transporte, si la hubo
}

// Error prioriza el mensaje del backend; si no hay, usa el fallback del endpoint.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Fallback
}

// Unwrap expone la causa de transporte para errors.Is/As.
func (e *HTTPError) Unwrap() error { return e.Err }

// Is mapea el código de estado a los centinelas de la taxonomía del dominio,
// de modo que errors.Is(err, domain.ErrAuth) funcione sin inspeccionar códigos
// en los llamadores.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case domain.ErrConnection:
		return e.StatusCode == 0
	case domain.ErrAuth:
		return e.StatusCode == http.StatusUnauthorized
	case domain.ErrPermission:
		return e.StatusCode == http.StatusForbidden
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case domain.ErrServer:
		return e.StatusCode >= 500
	}
	return false
}

// Client cliente HTTP del backend. No persiste ni borra tokens: eso es del
// session store. Tampoco clasifica errores: eso es del canal de notificaciones.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	log     *logger.Logger
}

// New construye el cliente. baseURL sin slash final, ej. http://127.0.0.1:8000/api.
func New(baseURL string, timeout time.Duration, tokens TokenProvider, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// errorBody formas conocidas de cuerpo de error del backend.
type errorBody struct {
	Error   string `json:"error"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (b errorBody) first() string {
	switch {
	case b.Error != "":
		return b.Error
	case b.Detail != "":
		return b.Detail
	case b.Message != "":
		return b.Message
	}
	return ""
}

// request ejecuta una llamada JSON. body y out pueden ser nil. withAuth indica
// si se adjunta el bearer; solo los tres endpoints de autenticación van sin él.
func (c *Client) request(ctx context.Context, method, path string, body, out any, withAuth bool, fallback string) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("fallo de red")
		// "Failed to fetch" mantiene compatibilidad con la clasificación por
		// substring que aún usan los llamadores legados.
		return &HTTPError{StatusCode: 0, Message: "Failed to fetch", Fallback: fallback, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("respuesta no 2xx")
		return &HTTPError{StatusCode: resp.StatusCode, Message: eb.first(), Fallback: fallback}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &HTTPError{StatusCode: resp.StatusCode, Fallback: fallback, Err: err}
	}
	return nil
}

// get/post/put/del azúcar sobre request, siempre autenticados.
func (c *Client) get(ctx context.Context, path string, out any, fallback string) error {
	return c.request(ctx, http.MethodGet, path, nil, out, true, fallback)
}

func (c *Client) post(ctx context.Context, path string, body, out any, fallback string) error {
	return c.request(ctx, http.MethodPost, path, body, out, true, fallback)
}

func (c *Client) put(ctx context.Context, path string, body, out any, fallback string) error {
	return c.request(ctx, http.MethodPut, path, body, out, true, fallback)
}

func (c *Client) del(ctx context.Context, path string, fallback string) error {
	return c.request(ctx, http.MethodDelete, path, nil, nil, true, fallback)
}
