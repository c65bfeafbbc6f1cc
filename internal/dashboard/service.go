// Package dashboard builds the home page summary from the four
// collections.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"multiservicios/internal/domain"
	"multiservicios/internal/enrich"
)

type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Summary is what the home page shows.
type Summary struct {
	Clientes      int
	Pedidos       int
	Proveedores   int
	Facturas      int
	TotalPedidos  float64
	TotalFacturas float64
	// SinCliente counts orders whose customer is not in the customer list.
	SinCliente int
}

type Service struct {
	clientes    Lister[domain.Cliente]
	pedidos     Lister[domain.Pedido]
	proveedores Lister[domain.Proveedor]
	facturas    Lister[domain.Factura]
}

func NewService(
	clientes Lister[domain.Cliente],
	pedidos Lister[domain.Pedido],
	proveedores Lister[domain.Proveedor],
	facturas Lister[domain.Factura],
) *Service {
	return &Service{
		clientes:    clientes,
		pedidos:     pedidos,
		proveedores: proveedores,
		facturas:    facturas,
	}
}

// Summary loads the four collections in parallel. The first failure
// cancels the rest.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var (
		clientes    []domain.Cliente
		pedidos     []domain.Pedido
		proveedores []domain.Proveedor
		facturas    []domain.Factura
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clientes, err = s.clientes.List(gctx)
		return wrap("clientes", err)
	})
	g.Go(func() (err error) {
		pedidos, err = s.pedidos.List(gctx)
		return wrap("pedidos", err)
	})
	g.Go(func() (err error) {
		proveedores, err = s.proveedores.List(gctx)
		return wrap("proveedores", err)
	})
	g.Go(func() (err error) {
		facturas, err = s.facturas.List(gctx)
		return wrap("facturas", err)
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	index := enrich.Index(clientes)
	sinCliente := 0
	for _, p := range pedidos {
		if _, ok := enrich.ClienteDe(p, index); !ok {
			sinCliente++
		}
	}

	return Summary{
		Clientes:      len(clientes),
		Pedidos:       len(pedidos),
		Proveedores:   len(proveedores),
		Facturas:      len(facturas),
		TotalPedidos:  enrich.TotalPedidos(pedidos),
		TotalFacturas: enrich.TotalFacturas(facturas),
		SinCliente:    sinCliente,
	}, nil
}

func wrap(collection string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("loading %s: %w", collection, err)
}
