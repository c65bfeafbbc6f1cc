package factura

import (
	"fmt"
	"net/http"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"multiservicios/internal/display"
	"multiservicios/internal/domain"
	"multiservicios/internal/enrich"
	apperrors "multiservicios/internal/errors"
	"multiservicios/internal/infrastructure/logger"
	"multiservicios/internal/listview"
	"multiservicios/internal/view"
)

// Prefix marks invoice display ids.
const Prefix = "F"

type Controller struct {
	store       Store
	proveedores ProveedorLister
	pedidos     PedidoLister
	list        *listview.View[domain.Factura]
	templates   *view.Engine
	logger      *zap.Logger
}

func NewController(store Store, proveedores ProveedorLister, pedidos PedidoLister, templates *view.Engine, logger *zap.Logger) *Controller {
	return &Controller{
		store:       store,
		proveedores: proveedores,
		pedidos:     pedidos,
		list:        listview.New[domain.Factura](store, Prefix, mensajes, logger),
		templates:   templates,
		logger:      logger,
	}
}

type row struct {
	ID              int64
	Label           string
	Numero          string
	ProveedorID     int64
	ProveedorLabel  string
	ProveedorNombre string
	Total           float64
}

type listPage struct {
	State    *listview.State[domain.Factura]
	Rows     []row
	Form     formView
	Messages listview.Messages
}

type mounted struct {
	state       *listview.State[domain.Factura]
	proveedores []domain.Proveedor
	pedidos     []domain.Pedido
}

func (m mounted) pedidoIndex() map[int64]domain.Pedido {
	return enrich.Index(m.pedidos)
}

// mount loads invoices, suppliers and orders in parallel.
func (c *Controller) mount(r *http.Request) mounted {
	var m mounted
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		m.state = c.list.Mount(ctx)
		return nil
	})
	g.Go(func() error {
		var err error
		m.proveedores, err = c.proveedores.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		m.pedidos, err = c.pedidos.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(r.Context(), c.logger).Error("loading invoice page data failed", zap.Error(err))
		m.state.Error = mensajes.Load
	}
	sort.Slice(m.pedidos, func(i, j int) bool { return m.pedidos[i].ID < m.pedidos[j].ID })
	return m
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	m := c.mount(r)
	m.state.FormOpen = r.URL.Query().Get("nuevo") == "1"
	c.renderList(w, r, http.StatusOK, m, newDraft(view.QueryID(r, "proveedorId")))
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	draft := parseDraft(r)
	m := c.mount(r)
	action := listview.ParseAction(r.PostFormValue("accion"))

	switch action.Kind {
	case listview.ActionAddLine:
		draft.PedidoIDs = listview.AddLine(draft.PedidoIDs)
		m.state.FormOpen = true
		c.renderList(w, r, http.StatusOK, m, draft)
	case listview.ActionRemoveLine:
		draft.PedidoIDs = listview.RemoveLine(draft.PedidoIDs, action.Index)
		m.state.FormOpen = true
		c.renderList(w, r, http.StatusOK, m, draft)
	default:
		err := c.list.Submit(r.Context(), m.state, withPedidos{Draft: draft, pedidos: m.pedidoIndex()})
		if err == nil {
			draft = newDraft(0)
		}
		c.renderList(w, r, listview.Status(err), m, draft)
	}
}

func (c *Controller) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Factura no encontrada", "/facturas", c.logger)
		return
	}
	c.templates.Write(w, r, http.StatusOK, "pages/confirmar.html", view.Page(r, "Eliminar factura", view.ConfirmData{
		Message: mensajes.Confirm,
		Action:  fmt.Sprintf("/facturas/%d/eliminar", id),
		Back:    "/facturas",
	}), c.logger)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Factura no encontrada", "/facturas", c.logger)
		return
	}
	m := c.mount(r)
	err := c.list.Remove(r.Context(), m.state, id)
	c.renderList(w, r, listview.Status(err), m, newDraft(0))
}

type referenciaRow struct {
	PedidoID int64
	Label    string
	Total    float64
}

type detailPage struct {
	Factura        domain.Factura
	Label          string
	TieneProveedor bool
	Proveedor      domain.Proveedor
	ProveedorLabel string
	Impuesto       display.TaxSplit
	Pedidos        []referenciaRow
	Error          string
}

// Detail shows an invoice with its tax split. The supplier comes embedded
// in the invoice or is joined from the supplier list.
func (c *Controller) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Factura no encontrada", "/facturas", c.logger)
		return
	}
	ctx := r.Context()
	log := logger.FromContext(ctx, c.logger)

	f, err := c.store.Get(ctx, id)
	if err != nil {
		if apperrors.IsMissing(err) {
			c.templates.NotFound(w, r, "Factura no encontrada", "/facturas", c.logger)
			return
		}
		log.Error("loading invoice failed", zap.Int64("facturaId", id), zap.Error(err))
		c.renderDetail(w, r, http.StatusBadGateway, detailPage{
			Label:          display.Placeholder,
			ProveedorLabel: display.Placeholder,
			Error:          "Error al cargar la factura",
		})
		return
	}

	var (
		facturas    []domain.Factura
		proveedores []domain.Proveedor
		pedidos     []domain.Pedido
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		facturas, err = c.store.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		proveedores, err = c.proveedores.List(gctx)
		return err
	})
	if len(f.Pedidos) > 0 {
		g.Go(func() error {
			var err error
			pedidos, err = c.pedidos.List(gctx)
			return err
		})
	}

	page := detailPage{
		Factura:        f,
		Label:          display.Placeholder,
		ProveedorLabel: display.Placeholder,
		Impuesto:       display.SplitIVA(f.TotalFactura),
	}
	status := http.StatusOK
	if err := g.Wait(); err != nil {
		log.Error("loading invoice context failed", zap.Int64("facturaId", id), zap.Error(err))
		page.Error = "Error al cargar datos"
		status = http.StatusBadGateway
	} else {
		page.Label = display.Of(facturas, id, Prefix)
	}

	if p, ok := enrich.ProveedorDe(f, enrich.Index(proveedores)); ok {
		page.TieneProveedor = true
		page.Proveedor = p
		page.ProveedorLabel = display.Of(proveedores, p.ID, "")
	}

	labels := display.IDs(display.EntityIDs(pedidos), "P")
	for _, ref := range f.Pedidos {
		page.Pedidos = append(page.Pedidos, referenciaRow{
			PedidoID: ref.PedidoID,
			Label:    display.Lookup(labels, ref.PedidoID),
			Total:    ref.Total,
		})
	}

	c.renderDetail(w, r, status, page)
}

func (c *Controller) renderList(w http.ResponseWriter, r *http.Request, status int, m mounted, draft Draft) {
	proveedorLabels := display.IDs(display.EntityIDs(m.proveedores), "")
	proveedores := enrich.Index(m.proveedores)

	rows := make([]row, 0, len(m.state.Items))
	for _, f := range m.state.Items {
		rw := row{
			ID:             f.ID,
			Label:          m.state.Label(f.ID),
			Numero:         f.Numero,
			ProveedorID:    f.ProveedorID,
			ProveedorLabel: display.Placeholder,
			Total:          f.TotalFactura,
		}
		if p, ok := enrich.ProveedorDe(f, proveedores); ok {
			rw.ProveedorNombre = p.Nombre
			rw.ProveedorLabel = display.Lookup(proveedorLabels, p.ID)
		}
		rows = append(rows, rw)
	}

	c.templates.Write(w, r, status, "pages/facturas.html", view.Page(r, "Facturas", listPage{
		State:    m.state,
		Rows:     rows,
		Form:     buildForm(draft, m.proveedores, m.pedidos),
		Messages: mensajes,
	}), c.logger)
}

func (c *Controller) renderDetail(w http.ResponseWriter, r *http.Request, status int, page detailPage) {
	c.templates.Write(w, r, status, "pages/factura.html", view.Page(r, "Factura", page), c.logger)
}
