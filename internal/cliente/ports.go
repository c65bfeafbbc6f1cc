package cliente

import (
	"context"

	"multiservicios/internal/domain"
	"multiservicios/internal/listview"
)

type Store interface {
	listview.Collection[domain.Cliente]
	Get(ctx context.Context, id int64) (domain.Cliente, error)
}

type PedidoLister interface {
	List(ctx context.Context) ([]domain.Pedido, error)
}
