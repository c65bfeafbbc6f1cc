package pedido

import (
	"fmt"
	"net/http"

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

// Prefix marks order display ids.
const Prefix = "P"

type Controller struct {
	store     Store
	clientes  ClienteLister
	list      *listview.View[domain.Pedido]
	templates *view.Engine
	logger    *zap.Logger
}

func NewController(store Store, clientes ClienteLister, templates *view.Engine, logger *zap.Logger) *Controller {
	return &Controller{
		store:     store,
		clientes:  clientes,
		list:      listview.New[domain.Pedido](store, Prefix, mensajes, logger),
		templates: templates,
		logger:    logger,
	}
}

type row struct {
	ID            int64
	Label         string
	Descripcion   string
	ClienteID     int64
	ClienteLabel  string
	ClienteNombre string
	Total         float64
}

type listPage struct {
	State    *listview.State[domain.Pedido]
	Rows     []row
	Form     formView
	Messages listview.Messages
}

type mounted struct {
	state    *listview.State[domain.Pedido]
	clientes []domain.Cliente
}

// mount loads orders and customers in parallel.
func (c *Controller) mount(r *http.Request) mounted {
	var m mounted
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		m.state = c.list.Mount(ctx)
		return nil
	})
	g.Go(func() error {
		var err error
		m.clientes, err = c.clientes.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(r.Context(), c.logger).Error("loading customers failed", zap.Error(err))
		m.state.Error = mensajes.Load
	}
	return m
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	m := c.mount(r)
	m.state.FormOpen = r.URL.Query().Get("nuevo") == "1"
	c.renderList(w, r, http.StatusOK, m, newDraft(view.QueryID(r, "clienteId")))
}

// Create handles the order form: line edits re-render it, anything else
// submits it.
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
		draft.Lineas = listview.AddLine(draft.Lineas)
		draft.Lineas[len(draft.Lineas)-1].Cantidad = 1
		m.state.FormOpen = true
		c.renderList(w, r, http.StatusOK, m, draft)
	case listview.ActionRemoveLine:
		draft.Lineas = listview.RemoveLine(draft.Lineas, action.Index)
		m.state.FormOpen = true
		c.renderList(w, r, http.StatusOK, m, draft)
	default:
		err := c.list.Submit(r.Context(), m.state, draft)
		if err == nil {
			draft = newDraft(0)
		}
		c.renderList(w, r, listview.Status(err), m, draft)
	}
}

func (c *Controller) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Pedido no encontrado", "/pedidos", c.logger)
		return
	}
	c.templates.Write(w, r, http.StatusOK, "pages/confirmar.html", view.Page(r, "Eliminar pedido", view.ConfirmData{
		Message: mensajes.Confirm,
		Action:  fmt.Sprintf("/pedidos/%d/eliminar", id),
		Back:    "/pedidos",
	}), c.logger)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Pedido no encontrado", "/pedidos", c.logger)
		return
	}
	m := c.mount(r)
	err := c.list.Remove(r.Context(), m.state, id)
	c.renderList(w, r, listview.Status(err), m, newDraft(0))
}

type detailPage struct {
	Pedido       domain.Pedido
	Label        string
	Total        float64
	Articulos    int
	Lineas       []display.Linea
	TieneCliente bool
	Cliente      domain.Cliente
	ClienteLabel string
	Error        string
}

// Detail shows one order with its customer and lines.
func (c *Controller) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Pedido no encontrado", "/pedidos", c.logger)
		return
	}
	ctx := r.Context()
	log := logger.FromContext(ctx, c.logger)

	p, err := c.store.Get(ctx, id)
	if err != nil {
		if apperrors.IsMissing(err) {
			c.templates.NotFound(w, r, "Pedido no encontrado", "/pedidos", c.logger)
			return
		}
		log.Error("loading order failed", zap.Int64("pedidoId", id), zap.Error(err))
		c.renderDetail(w, r, http.StatusBadGateway, detailPage{Label: display.Placeholder, Error: "Error al cargar datos"})
		return
	}

	var (
		pedidos  []domain.Pedido
		clientes []domain.Cliente
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pedidos, err = c.store.List(gctx)
		return err
	})
	if p.ClienteID != 0 {
		g.Go(func() error {
			var err error
			clientes, err = c.clientes.List(gctx)
			return err
		})
	}

	page := detailPage{
		Pedido:       p,
		Label:        display.Placeholder,
		ClienteLabel: display.Placeholder,
		Total:        p.Amount(),
		Articulos:    len(p.Productos),
		Lineas:       display.Lineas(p.Productos),
	}
	status := http.StatusOK
	if err := g.Wait(); err != nil {
		log.Error("loading order context failed", zap.Int64("pedidoId", id), zap.Error(err))
		page.Error = "Error al cargar datos"
		status = http.StatusBadGateway
	} else {
		page.Label = display.Of(pedidos, id, Prefix)
	}

	if cliente, ok := enrich.ClienteDe(p, enrich.Index(clientes)); ok {
		page.TieneCliente = true
		page.Cliente = cliente
		page.ClienteLabel = display.Of(clientes, cliente.ID, "")
	}

	c.renderDetail(w, r, status, page)
}

func (c *Controller) renderList(w http.ResponseWriter, r *http.Request, status int, m mounted, draft Draft) {
	clienteLabels := display.IDs(display.EntityIDs(m.clientes), "")
	clientes := enrich.Index(m.clientes)

	rows := make([]row, 0, len(m.state.Items))
	for _, p := range m.state.Items {
		rw := row{
			ID:           p.ID,
			Label:        m.state.Label(p.ID),
			Descripcion:  p.Descripcion,
			ClienteID:    p.ClienteID,
			ClienteLabel: display.Placeholder,
			Total:        p.Amount(),
		}
		if cliente, ok := enrich.ClienteDe(p, clientes); ok {
			rw.ClienteNombre = cliente.Nombre
			rw.ClienteLabel = display.Lookup(clienteLabels, cliente.ID)
		}
		rows = append(rows, rw)
	}

	c.templates.Write(w, r, status, "pages/pedidos.html", view.Page(r, "Pedidos", listPage{
		State:    m.state,
		Rows:     rows,
		Form:     buildForm(draft, m.clientes),
		Messages: mensajes,
	}), c.logger)
}

func (c *Controller) renderDetail(w http.ResponseWriter, r *http.Request, status int, page detailPage) {
	c.templates.Write(w, r, status, "pages/pedido.html", view.Page(r, "Información del Pedido", page), c.logger)
}
