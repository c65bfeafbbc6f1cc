package proveedor

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"multiservicios/internal/display"
	"multiservicios/internal/domain"
	"multiservicios/internal/enrich"
	"multiservicios/internal/infrastructure/logger"
	"multiservicios/internal/listview"
	"multiservicios/internal/view"
)

type Controller struct {
	store     Store
	facturas  FacturaLister
	list      *listview.View[domain.Proveedor]
	templates *view.Engine
	logger    *zap.Logger
}

func NewController(store Store, facturas FacturaLister, templates *view.Engine, logger *zap.Logger) *Controller {
	return &Controller{
		store:     store,
		facturas:  facturas,
		list:      listview.New[domain.Proveedor](store, "", mensajes, logger),
		templates: templates,
		logger:    logger,
	}
}

type listPage struct {
	State    *listview.State[domain.Proveedor]
	Draft    Draft
	Messages listview.Messages
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	s := c.list.Mount(r.Context())
	s.FormOpen = r.URL.Query().Get("nuevo") == "1"
	c.renderList(w, r, http.StatusOK, s, Draft{})
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	draft := parseDraft(r)
	s := c.list.Mount(r.Context())
	err := c.list.Submit(r.Context(), s, draft)
	if err == nil {
		draft = Draft{}
	}
	c.renderList(w, r, listview.Status(err), s, draft)
}

func (c *Controller) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Proveedor no encontrado", "/proveedores", c.logger)
		return
	}
	c.templates.Write(w, r, http.StatusOK, "pages/confirmar.html", view.Page(r, "Eliminar proveedor", view.ConfirmData{
		Message: mensajes.Confirm,
		Action:  fmt.Sprintf("/proveedores/%d/eliminar", id),
		Back:    "/proveedores",
	}), c.logger)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Proveedor no encontrado", "/proveedores", c.logger)
		return
	}
	s := c.list.Mount(r.Context())
	err := c.list.Remove(r.Context(), s, id)
	c.renderList(w, r, listview.Status(err), s, Draft{})
}

type facturaRow struct {
	ID     int64
	Label  string
	Numero string
	Total  float64
}

type facturasPage struct {
	Proveedor domain.Proveedor
	Label     string
	Facturas  []facturaRow
	Total     float64
	Error     string
}

// Facturas lists the invoices of one supplier. Backend B has no
// GET /proveedores/{id}, so the supplier is taken from the list.
func (c *Controller) Facturas(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Proveedor no encontrado", "/proveedores", c.logger)
		return
	}
	ctx := r.Context()

	var (
		proveedores []domain.Proveedor
		facturas    []domain.Factura
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		proveedores, err = c.store.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		facturas, err = c.facturas.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx, c.logger).Error("loading supplier invoices failed", zap.Int64("proveedorId", id), zap.Error(err))
		c.renderFacturas(w, r, http.StatusBadGateway, facturasPage{Label: display.Placeholder, Error: "Error al cargar datos"})
		return
	}

	proveedor, ok := enrich.Index(proveedores)[id]
	if !ok {
		c.templates.NotFound(w, r, "Proveedor no encontrado", "/proveedores", c.logger)
		return
	}

	propias := enrich.FacturasDeProveedor(facturas, id)
	labels := display.IDs(display.EntityIDs(facturas), "F")
	rows := make([]facturaRow, 0, len(propias))
	for _, f := range propias {
		rows = append(rows, facturaRow{
			ID:     f.ID,
			Label:  display.Lookup(labels, f.ID),
			Numero: f.Numero,
			Total:  f.TotalFactura,
		})
	}

	c.renderFacturas(w, r, http.StatusOK, facturasPage{
		Proveedor: proveedor,
		Label:     display.Of(proveedores, id, ""),
		Facturas:  rows,
		Total:     enrich.TotalFacturas(propias),
	})
}

func (c *Controller) renderList(w http.ResponseWriter, r *http.Request, status int, s *listview.State[domain.Proveedor], draft Draft) {
	c.templates.Write(w, r, status, "pages/proveedores.html", view.Page(r, "Proveedores", listPage{
		State:    s,
		Draft:    draft,
		Messages: mensajes,
	}), c.logger)
}

func (c *Controller) renderFacturas(w http.ResponseWriter, r *http.Request, status int, page facturasPage) {
	c.templates.Write(w, r, status, "pages/proveedor_facturas.html", view.Page(r, "Facturas del proveedor", page), c.logger)
}
