package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiservicios/internal/domain"
)

type mockLister[T any] struct {
	ListFunc func(ctx context.Context) ([]T, error)
}

func (m *mockLister[T]) List(ctx context.Context) ([]T, error) {
	return m.ListFunc(ctx)
}

func returning[T any](items []T, err error) *mockLister[T] {
	return &mockLister[T]{ListFunc: func(ctx context.Context) ([]T, error) { return items, err }}
}

func TestSummary(t *testing.T) {
	svc := NewService(
		returning([]domain.Cliente{{ID: 1}, {ID: 2}}, nil),
		returning([]domain.Pedido{
			{ID: 1, ClienteID: 1, Total: 100},
			{ID: 2, ClienteID: 9, Productos: []domain.Producto{{Precio: 100, Cantidad: 2}, {Precio: 50, Cantidad: 1}}},
		}, nil),
		returning([]domain.Proveedor{{ID: 1}}, nil),
		returning([]domain.Factura{{ID: 1, TotalFactura: 112}, {ID: 2, TotalFactura: 224}}, nil),
	)

	got, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Summary{
		Clientes:      2,
		Pedidos:       2,
		Proveedores:   1,
		Facturas:      2,
		TotalPedidos:  350,
		TotalFacturas: 336,
		SinCliente:    1,
	}, got)
}

func TestSummary_AnyFailureFails(t *testing.T) {
	svc := NewService(
		returning([]domain.Cliente{}, nil),
		returning([]domain.Pedido{}, nil),
		returning[domain.Proveedor](nil, errors.New("connection refused")),
		returning([]domain.Factura{}, nil),
	)

	_, err := svc.Summary(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading proveedores")
}
