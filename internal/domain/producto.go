package domain

// Producto is an order line. It only exists inside a Pedido.
type Producto struct {
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
	Cantidad int     `json:"cantidad"`
}

// Units treats a missing quantity as a single unit.
func (p Producto) Units() int {
	if p.Cantidad <= 0 {
		return 1
	}
	return p.Cantidad
}

func (p Producto) Subtotal() float64 {
	return p.Precio * float64(p.Units())
}

// SumLines is the total of an order built from its lines.
func SumLines(lines []Producto) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
