package display

import (
	"strconv"

	"multiservicios/internal/domain"
)

// Linea is an order line ready for a table row.
type Linea struct {
	Nombre   string
	Precio   string
	Cantidad string
	Subtotal string
}

func Lineas(productos []domain.Producto) []Linea {
	out := make([]Linea, 0, len(productos))
	for _, p := range productos {
		out = append(out, Linea{
			Nombre:   p.Nombre,
			Precio:   Quetzales(p.Precio),
			Cantidad: strconv.Itoa(p.Units()),
			Subtotal: Quetzales(p.Subtotal()),
		})
	}
	return out
}
