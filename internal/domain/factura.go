package domain

import "encoding/json"

// TasaIVA is the tax rate already included in every invoice total.
const TasaIVA = 0.12

// PedidoReferencia links an invoice to an order of backend A.
type PedidoReferencia struct {
	PedidoID int64   `json:"pedidoId"`
	Total    float64 `json:"total"`
}

// Factura is an invoice of backend B. ProveedorID is canonical.
type Factura struct {
	ID           int64
	Numero       string
	ProveedorID  int64
	Proveedor    *Proveedor
	TotalFactura float64
	Pedidos      []PedidoReferencia
}

type facturaWire struct {
	ID           int64              `json:"id"`
	Numero       string             `json:"numero,omitempty"`
	ProveedorID  int64              `json:"proveedorId,omitempty"`
	Proveedor    *Proveedor         `json:"proveedor,omitempty"`
	TotalFactura float64            `json:"totalFactura"`
	Pedidos      []PedidoReferencia `json:"pedidos,omitempty"`
}

func (f Factura) EntityID() int64 {
	return f.ID
}

// SumReferencias is the invoice total built from its order references.
func SumReferencias(refs []PedidoReferencia) float64 {
	total := 0.0
	for _, r := range refs {
		total += r.Total
	}
	return total
}

func (f *Factura) UnmarshalJSON(data []byte) error {
	var wire struct {
		facturaWire
		ProveedorIDSnake int64 `json:"proveedor_id"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*f = Factura{
		ID:           wire.ID,
		Numero:       wire.Numero,
		Proveedor:    wire.Proveedor,
		TotalFactura: wire.TotalFactura,
		Pedidos:      wire.Pedidos,
	}

	switch {
	case wire.ProveedorID != 0:
		f.ProveedorID = wire.ProveedorID
	case wire.Proveedor != nil && wire.Proveedor.ID != 0:
		f.ProveedorID = wire.Proveedor.ID
	default:
		f.ProveedorID = wire.ProveedorIDSnake
	}
	return nil
}

func (f Factura) MarshalJSON() ([]byte, error) {
	return json.Marshal(facturaWire{
		ID:           f.ID,
		Numero:       f.Numero,
		ProveedorID:  f.ProveedorID,
		Proveedor:    f.Proveedor,
		TotalFactura: f.TotalFactura,
		Pedidos:      f.Pedidos,
	})
}
