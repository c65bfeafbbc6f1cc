package backend

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiservicios/internal/config"
	"multiservicios/internal/domain"
	apperrors "multiservicios/internal/errors"
	"multiservicios/internal/testutil"
)

type mockDoer struct {
	FetchFunc func(ctx context.Context, req Request, out any) (Response, error)
}

func (m *mockDoer) Fetch(ctx context.Context, req Request, out any) (Response, error) {
	return m.FetchFunc(ctx, req, out)
}

func newTestClients(t *testing.T) (*Clients, *testutil.Backend) {
	t.Helper()
	fake := testutil.NewBackend(t)
	clients := NewClients(newTestFetcher(nil, nil), config.BackendsConfig{
		BaseA: fake.BaseURL(),
		BaseB: fake.BaseURL(),
	})
	return clients, fake
}

func TestResource_List(t *testing.T) {
	clients, fake := newTestClients(t)
	fake.Seed("clientes", 1, map[string]any{"nombre": "Ana", "correo": "ana@x.com"})
	fake.Seed("clientes", 2, map[string]any{"nombre": "Luis", "correo": "luis@x.com"})

	got, err := clients.Clientes.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestResource_ListEmptyIsNotNil(t *testing.T) {
	doer := &mockDoer{
		FetchFunc: func(ctx context.Context, req Request, out any) (Response, error) {
			return Response{Status: http.StatusOK, Empty: true}, nil
		},
	}

	got, err := NewResource[domain.Cliente](doer, "http://x", "/clientes").List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResource_GetNormalisesCustomerReference(t *testing.T) {
	clients, fake := newTestClients(t)
	fake.Seed("pedidos", 4, map[string]any{
		"descripcion": "PEDIDO-0004",
		"total":       250.0,
		"cliente":     map[string]any{"id": 7, "nombre": "Ana"},
	})

	got, err := clients.Pedidos.Get(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ClienteID)
}

func TestResource_GetEmptyBodyIsNotFound(t *testing.T) {
	doer := &mockDoer{
		FetchFunc: func(ctx context.Context, req Request, out any) (Response, error) {
			assert.Equal(t, "http://x/facturas/5", req.URL)
			return Response{Status: http.StatusOK, Empty: true}, nil
		},
	}

	_, err := NewResource[domain.Factura](doer, "http://x", "/facturas").Get(context.Background(), 5)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestResource_CreateReturnsServerEntity(t *testing.T) {
	clients, fake := newTestClients(t)
	fake.Seed("clientes", 10, map[string]any{"nombre": "Ana", "correo": "ana@x.com"})

	got, err := clients.Clientes.Create(context.Background(), domain.Cliente{Nombre: "Luis", Correo: "luis@x.com"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "Luis", got.Nombre)
	assert.Equal(t, 2, fake.Count("clientes"))
}

func TestResource_CreateEmptyBodyFails(t *testing.T) {
	doer := &mockDoer{
		FetchFunc: func(ctx context.Context, req Request, out any) (Response, error) {
			return Response{Status: http.StatusCreated, Empty: true}, nil
		},
	}

	_, err := NewResource[domain.Cliente](doer, "http://x", "/clientes").Create(context.Background(), domain.Cliente{Nombre: "Ana"})

	assert.Error(t, err)
}

func TestResource_Delete(t *testing.T) {
	clients, fake := newTestClients(t)
	fake.Seed("proveedores", 3, map[string]any{"nombre": "TecnoSur"})

	require.NoError(t, clients.Proveedores.Delete(context.Background(), 3))
	assert.Equal(t, 0, fake.Count("proveedores"))
	assert.Contains(t, fake.Requests(), "DELETE /api/proveedores/3")
}

func TestResource_DeleteMissingIsStatusError(t *testing.T) {
	clients, _ := newTestClients(t)

	err := clients.Facturas.Delete(context.Background(), 99)

	se, ok := apperrors.IsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, se.Status)
}
