package pedido

import (
	"net/http"
	"strconv"

	"multiservicios/internal/display"
	"multiservicios/internal/domain"
	"multiservicios/internal/listview"
	"multiservicios/internal/view"
)

var mensajes = listview.Messages{
	Load:    "Error al cargar datos",
	Create:  "Error al crear pedido",
	Delete:  "Error al eliminar pedido",
	Empty:   "No hay pedidos registrados",
	Confirm: "¿Estás seguro de que deseas eliminar este pedido?",
	Fields: map[string]string{
		"ClienteID": "Debe seleccionar un cliente",
		"Productos": "Debe agregar al menos un producto",
	},
}

// Linea is one catalog pick of the order form.
type Linea struct {
	ProductoID int
	Cantidad   int
}

func (l Linea) item() (domain.ItemCatalogo, bool) {
	return domain.CatalogoPorID(l.ProductoID)
}

// Draft is the order form. It always has at least one line.
type Draft struct {
	ClienteID int64
	Lineas    []Linea
}

func newDraft(clienteID int64) Draft {
	return Draft{ClienteID: clienteID, Lineas: []Linea{{Cantidad: 1}}}
}

type payload struct {
	ClienteID int64             `json:"clienteId" validate:"required"`
	Productos []domain.Producto `json:"productos" validate:"min=1"`
}

// Productos turns the usable lines into order lines; blank picks are
// skipped.
func (d Draft) Productos() []domain.Producto {
	var out []domain.Producto
	for _, l := range d.Lineas {
		item, ok := l.item()
		if !ok {
			continue
		}
		out = append(out, item.Linea(l.Cantidad))
	}
	return out
}

func (d Draft) Payload() any {
	return payload{ClienteID: d.ClienteID, Productos: d.Productos()}
}

// Estimado is the running total shown under the lines.
func (d Draft) Estimado() float64 {
	return domain.SumLines(d.Productos())
}

func parseDraft(r *http.Request) Draft {
	d := Draft{ClienteID: view.FormInt64(r.PostFormValue("clienteId"))}
	productos := r.PostForm["producto"]
	cantidades := r.PostForm["cantidad"]
	for i, raw := range productos {
		id, _ := strconv.Atoi(raw)
		qty := 1
		if i < len(cantidades) {
			if n, err := strconv.Atoi(cantidades[i]); err == nil && n > 0 {
				qty = n
			}
		}
		d.Lineas = append(d.Lineas, Linea{ProductoID: id, Cantidad: qty})
	}
	if len(d.Lineas) == 0 {
		d.Lineas = []Linea{{Cantidad: 1}}
	}
	return d
}

type lineaView struct {
	Index      int
	ProductoID int
	Cantidad   int
	Precio     float64
	Subtotal   float64
}

type opcion struct {
	ID    int64
	Label string
}

type formView struct {
	ClienteID int64
	Lineas    []lineaView
	CanRemove bool
	Estimado  float64
	Clientes  []opcion
	Catalogo  []opcion
}

func buildForm(d Draft, clientes []domain.Cliente) formView {
	f := formView{
		ClienteID: d.ClienteID,
		CanRemove: len(d.Lineas) > 1,
		Estimado:  d.Estimado(),
	}
	for i, l := range d.Lineas {
		lv := lineaView{Index: i, ProductoID: l.ProductoID, Cantidad: l.Cantidad}
		if item, ok := l.item(); ok {
			lv.Precio = item.Precio
			lv.Subtotal = item.Linea(l.Cantidad).Subtotal()
		}
		f.Lineas = append(f.Lineas, lv)
	}
	for _, c := range clientes {
		f.Clientes = append(f.Clientes, opcion{ID: c.ID, Label: c.Nombre + " (" + c.Correo + ")"})
	}
	for _, item := range domain.Catalogo() {
		f.Catalogo = append(f.Catalogo, opcion{ID: int64(item.ID), Label: display.NombreCatalogo(item)})
	}
	return f
}
