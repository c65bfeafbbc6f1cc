package proveedor

import (
	"context"

	"multiservicios/internal/domain"
	"multiservicios/internal/listview"
)

type Store interface {
	listview.Collection[domain.Proveedor]
}

type FacturaLister interface {
	List(ctx context.Context) ([]domain.Factura, error)
}
