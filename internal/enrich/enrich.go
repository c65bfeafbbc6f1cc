// Package enrich joins collections that were loaded separately, by their
// canonical foreign keys.
package enrich

import "multiservicios/internal/domain"

// Index maps raw id to entity.
func Index[T interface{ EntityID() int64 }](items []T) map[int64]T {
	out := make(map[int64]T, len(items))
	for _, item := range items {
		out[item.EntityID()] = item
	}
	return out
}

// PedidosDeCliente keeps the orders whose customer is clienteID.
func PedidosDeCliente(pedidos []domain.Pedido, clienteID int64) []domain.Pedido {
	out := []domain.Pedido{}
	for _, p := range pedidos {
		if p.ClienteID == clienteID {
			out = append(out, p)
		}
	}
	return out
}

// FacturasDeProveedor keeps the invoices whose supplier is proveedorID.
func FacturasDeProveedor(facturas []domain.Factura, proveedorID int64) []domain.Factura {
	out := []domain.Factura{}
	for _, f := range facturas {
		if f.ProveedorID == proveedorID {
			out = append(out, f)
		}
	}
	return out
}

// ClienteDe returns the customer of p: the embedded one, or the one in
// the index.
func ClienteDe(p domain.Pedido, clientes map[int64]domain.Cliente) (domain.Cliente, bool) {
	if p.Cliente != nil && p.Cliente.Nombre != "" {
		c := *p.Cliente
		if c.ID == 0 {
			c.ID = p.ClienteID
		}
		return c, true
	}
	if p.ClienteID == 0 {
		return domain.Cliente{}, false
	}
	c, ok := clientes[p.ClienteID]
	return c, ok
}

func ProveedorDe(f domain.Factura, proveedores map[int64]domain.Proveedor) (domain.Proveedor, bool) {
	if f.Proveedor != nil && f.Proveedor.Nombre != "" {
		p := *f.Proveedor
		if p.ID == 0 {
			p.ID = f.ProveedorID
		}
		return p, true
	}
	if f.ProveedorID == 0 {
		return domain.Proveedor{}, false
	}
	p, ok := proveedores[f.ProveedorID]
	return p, ok
}

// TotalPedidos sums the amount of every order.
func TotalPedidos(pedidos []domain.Pedido) float64 {
	total := 0.0
	for _, p := range pedidos {
		total += p.Amount()
	}
	return total
}

func TotalFacturas(facturas []domain.Factura) float64 {
	total := 0.0
	for _, f := range facturas {
		total += f.TotalFactura
	}
	return total
}
