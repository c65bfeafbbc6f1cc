package factura

import (
	"net/http"

	"multiservicios/internal/display"
	"multiservicios/internal/domain"
	"multiservicios/internal/listview"
	"multiservicios/internal/view"
)

var mensajes = listview.Messages{
	Load:    "Error al cargar datos",
	Create:  "Error al crear factura",
	Delete:  "Error al eliminar factura",
	Empty:   "No hay facturas registradas",
	Confirm: "¿Estás seguro de que deseas eliminar esta factura?",
	Fields: map[string]string{
		"ProveedorID": "Debe seleccionar un proveedor",
		"Pedidos":     "Debe agregar al menos un pedido",
	},
}

// Draft is the invoice form; each line references an order by raw id.
type Draft struct {
	ProveedorID int64
	PedidoIDs   []int64
}

func newDraft(proveedorID int64) Draft {
	return Draft{ProveedorID: proveedorID, PedidoIDs: []int64{0}}
}

type payload struct {
	ProveedorID int64                     `json:"proveedorId" validate:"required"`
	Pedidos     []domain.PedidoReferencia `json:"pedidos" validate:"min=1"`
}

// withPedidos resolves the order totals the payload needs.
type withPedidos struct {
	Draft
	pedidos map[int64]domain.Pedido
}

// Referencias builds the order references of every picked line. The
// total of a line is the referenced order's total.
func (d Draft) Referencias(pedidos map[int64]domain.Pedido) []domain.PedidoReferencia {
	var out []domain.PedidoReferencia
	for _, id := range d.PedidoIDs {
		p, ok := pedidos[id]
		if id == 0 || !ok {
			continue
		}
		out = append(out, domain.PedidoReferencia{PedidoID: id, Total: p.Amount()})
	}
	return out
}

func (d withPedidos) Payload() any {
	return payload{ProveedorID: d.ProveedorID, Pedidos: d.Referencias(d.pedidos)}
}

func parseDraft(r *http.Request) Draft {
	d := Draft{ProveedorID: view.FormInt64(r.PostFormValue("proveedorId"))}
	for _, raw := range r.PostForm["pedidoId"] {
		d.PedidoIDs = append(d.PedidoIDs, view.FormInt64(raw))
	}
	if len(d.PedidoIDs) == 0 {
		d.PedidoIDs = []int64{0}
	}
	return d
}

type opcion struct {
	ID    int64
	Label string
}

type lineaView struct {
	Index    int
	PedidoID int64
	Total    float64
}

type formView struct {
	ProveedorID int64
	Lineas      []lineaView
	CanRemove   bool
	Estimado    float64
	Proveedores []opcion
	Pedidos     []opcion
}

func buildForm(d Draft, proveedores []domain.Proveedor, pedidos []domain.Pedido) formView {
	index := make(map[int64]domain.Pedido, len(pedidos))
	for _, p := range pedidos {
		index[p.ID] = p
	}

	f := formView{
		ProveedorID: d.ProveedorID,
		CanRemove:   len(d.PedidoIDs) > 1,
		Estimado:    domain.SumReferencias(d.Referencias(index)),
	}
	for i, id := range d.PedidoIDs {
		lv := lineaView{Index: i, PedidoID: id}
		if p, ok := index[id]; ok {
			lv.Total = p.Amount()
		}
		f.Lineas = append(f.Lineas, lv)
	}
	for _, p := range proveedores {
		f.Proveedores = append(f.Proveedores, opcion{ID: p.ID, Label: p.Nombre})
	}
	labels := display.IDs(display.EntityIDs(pedidos), "P")
	for _, p := range pedidos {
		label := display.Lookup(labels, p.ID)
		if p.Descripcion != "" {
			label += " - " + p.Descripcion
		}
		f.Pedidos = append(f.Pedidos, opcion{ID: p.ID, Label: label + " - " + display.Quetzales(p.Amount())})
	}
	return f
}
