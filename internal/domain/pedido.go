package domain

import "encoding/json"

// Pedido is an order of backend A. ClienteID is the single canonical
// customer reference, whatever spelling the backend used.
type Pedido struct {
	ID          int64
	Descripcion string
	Total       float64
	ClienteID   int64
	Cliente     *Cliente
	Productos   []Producto
}

type pedidoWire struct {
	ID          int64      `json:"id"`
	Descripcion string     `json:"descripcion,omitempty"`
	Total       float64    `json:"total"`
	ClienteID   int64      `json:"clienteId,omitempty"`
	Cliente     *Cliente   `json:"cliente,omitempty"`
	Productos   []Producto `json:"productos,omitempty"`
}

func (p Pedido) EntityID() int64 {
	return p.ID
}

// Amount is the server total, or the sum of the lines when the server sent none.
func (p Pedido) Amount() float64 {
	if p.Total != 0 || len(p.Productos) == 0 {
		return p.Total
	}
	return SumLines(p.Productos)
}

func (p *Pedido) UnmarshalJSON(data []byte) error {
	var wire struct {
		pedidoWire
		ClienteIDSnake int64 `json:"cliente_id"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*p = Pedido{
		ID:          wire.ID,
		Descripcion: wire.Descripcion,
		Total:       wire.Total,
		Cliente:     wire.Cliente,
		Productos:   wire.Productos,
	}

	switch {
	case wire.ClienteID != 0:
		p.ClienteID = wire.ClienteID
	case wire.Cliente != nil && wire.Cliente.ID != 0:
		p.ClienteID = wire.Cliente.ID
	default:
		p.ClienteID = wire.ClienteIDSnake
	}
	return nil
}

func (p Pedido) MarshalJSON() ([]byte, error) {
	return json.Marshal(pedidoWire{
		ID:          p.ID,
		Descripcion: p.Descripcion,
		Total:       p.Total,
		ClienteID:   p.ClienteID,
		Cliente:     p.Cliente,
		Productos:   p.Productos,
	})
}
