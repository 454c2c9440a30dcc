package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newClient(t *testing.T, handler http.HandlerFunc, token string) (*api.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL+"/api", 5*time.Second, staticToken(token), logger.Nop()), srv
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación de las peticiones
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_AdjuntaBearerEnEndpointsProtegidos(t *testing.T) {
	var gotAuth, gotPath string
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]entity.Product{})
	}, "jwt-abc")

	_, err := client.FetchProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer jwt-abc", gotAuth)
	assert.Equal(t, "/api/products/", gotPath, "los paths del contrato llevan slash final")
}

func TestClient_LoginNoLlevaBearer(t *testing.T) {
	var gotAuth string
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{Token: "jwt-new"})
	}, "jwt-stale")

	resp, err := client.LoginAdmin(context.Background(), "a@shop.com", "pw")
	require.NoError(t, err)

	assert.Empty(t, gotAuth, "los endpoints de autenticación van sin bearer")
	assert.Equal(t, "jwt-new", resp.Token)
}

func TestClient_SinSesion_NoEnviaHeaderVacio(t *testing.T) {
	var hasHeader bool
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode([]entity.Product{})
	}, "")

	_, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.False(t, hasHeader, "sin token no se manda Authorization")
}

// ──────────────────────────────────────────────────────────────────────────────
// Manejo de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_ErrorConCuerpo_PrefiereMensajeDelBackend(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Insufficient stock for Arroz 1kg"})
	}, "jwt")

	_, err := client.AddSale(context.Background(), entity.Sale{})
	require.Error(t, err)

	var httpErr *api.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.EqualError(t, err, "Insufficient stock for Arroz 1kg")
}

func TestClient_ErrorSinCuerpo_UsaElFallbackDelEndpoint(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "jwt")

	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "Failed to fetch products",
		"sin mensaje del backend manda el fallback fijo por endpoint")
}

func TestClient_CuerpoDetail_TambienSeExtrae(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Token expired"})
	}, "jwt")

	_, err := client.FetchCustomers(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "Token expired")
}

func TestClient_FalloDeRed_EsStatusCero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := api.New(srv.URL+"/api", time.Second, staticToken(""), logger.Nop())
	srv.Close() // el servidor muere antes de la llamada

	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)

	var httpErr *api.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Zero(t, httpErr.StatusCode, "status 0 significa que el servidor nunca respondió")
	assert.EqualError(t, err, "Failed to fetch")
	assert.Error(t, httpErr.Unwrap(), "la causa de transporte queda expuesta")
}

func TestHTTPError_MapeaALosCentinelasDelDominio(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"fallo de red", 0, domain.ErrConnection},
		{"401", http.StatusUnauthorized, domain.ErrAuth},
		{"403", http.StatusForbidden, domain.ErrPermission},
		{"404", http.StatusNotFound, domain.ErrNotFound},
		{"503", http.StatusServiceUnavailable, domain.ErrServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := &api.HTTPError{StatusCode: tc.status, Fallback: "Failed to fetch products"}
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}

	// Un 400 no cae en ningún bucket de la taxonomía.
	err := &api.HTTPError{StatusCode: http.StatusBadRequest}
	for _, sentinel := range []error{domain.ErrConnection, domain.ErrAuth, domain.ErrPermission, domain.ErrNotFound, domain.ErrServer} {
		assert.NotErrorIs(t, err, sentinel)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Decodificación
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_DecodificaLaEntidadCreada(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in entity.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 42
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}, "jwt")

	created, err := client.AddProduct(context.Background(), entity.Product{Name: "Arroz 1kg"})
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, "Arroz 1kg", created.Name)
}

func TestClient_DeleteSinCuerpo(t *testing.T) {
	var gotMethod string
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}, "jwt")

	require.NoError(t, client.DeleteProduct(context.Background(), 7))
	assert.Equal(t, http.MethodDelete, gotMethod)
}
