package factura

import (
	"context"

	"multiservicios/internal/domain"
	"multiservicios/internal/listview"
)

type Store interface {
	listview.Collection[domain.Factura]
	Get(ctx context.Context, id int64) (domain.Factura, error)
}

type ProveedorLister interface {
	List(ctx context.Context) ([]domain.Proveedor, error)
}

// PedidoLister reads the orders of backend A offered as invoice lines.
type PedidoLister interface {
	List(ctx context.Context) ([]domain.Pedido, error)
}
