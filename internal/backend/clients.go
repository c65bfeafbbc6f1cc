package backend

import (
	"multiservicios/internal/config"
	"multiservicios/internal/domain"
)

// Clients groups the collections of both backends.
type Clients struct {
	Clientes    *Resource[domain.Cliente]
	Pedidos     *Resource[domain.Pedido]
	Proveedores *Resource[domain.Proveedor]
	Facturas    *Resource[domain.Factura]
}

func NewClients(doer Doer, cfg config.BackendsConfig) *Clients {
	return &Clients{
		Clientes:    NewResource[domain.Cliente](doer, cfg.BaseA, "/clientes"),
		Pedidos:     NewResource[domain.Pedido](doer, cfg.BaseA, "/pedidos"),
		Proveedores: NewResource[domain.Proveedor](doer, cfg.BaseB, "/proveedores"),
		Facturas:    NewResource[domain.Factura](doer, cfg.BaseB, "/facturas"),
	}
}
