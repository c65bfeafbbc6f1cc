package pedido

import (
	"context"

	"multiservicios/internal/domain"
	"multiservicios/internal/listview"
)

type Store interface {
	listview.Collection[domain.Pedido]
	Get(ctx context.Context, id int64) (domain.Pedido, error)
}

type ClienteLister interface {
	List(ctx context.Context) ([]domain.Cliente, error)
}
