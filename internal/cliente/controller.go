package cliente

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

type Controller struct {
	store     Store
	pedidos   PedidoLister
	list      *listview.View[domain.Cliente]
	templates *view.Engine
	logger    *zap.Logger
}

func NewController(store Store, pedidos PedidoLister, templates *view.Engine, logger *zap.Logger) *Controller {
	return &Controller{
		store:     store,
		pedidos:   pedidos,
		list:      listview.New[domain.Cliente](store, "", mensajes, logger),
		templates: templates,
		logger:    logger,
	}
}

type listPage struct {
	State    *listview.State[domain.Cliente]
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
		c.templates.NotFound(w, r, "Cliente no encontrado", "/clientes", c.logger)
		return
	}
	c.templates.Write(w, r, http.StatusOK, "pages/confirmar.html", view.Page(r, "Eliminar cliente", view.ConfirmData{
		Message: mensajes.Confirm,
		Action:  fmt.Sprintf("/clientes/%d/eliminar", id),
		Back:    "/clientes",
	}), c.logger)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Cliente no encontrado", "/clientes", c.logger)
		return
	}

	s := c.list.Mount(r.Context())
	err := c.list.Remove(r.Context(), s, id)
	c.renderList(w, r, listview.Status(err), s, Draft{})
}

type pedidosPage struct {
	Cliente domain.Cliente
	Label   string
	Error   string
	Pedidos []pedidoCard
	Count   int
	Total   float64
}

type pedidoCard struct {
	ID          int64
	Label       string
	Descripcion string
	Articulos   int
	Total       float64
	Lineas      []display.Linea
}

// Pedidos shows one customer with every order that references it.
func (c *Controller) Pedidos(w http.ResponseWriter, r *http.Request) {
	id, ok := view.PathID(r)
	if !ok {
		c.templates.NotFound(w, r, "Cliente no encontrado", "/clientes", c.logger)
		return
	}
	ctx := r.Context()
	log := logger.FromContext(ctx, c.logger)

	cliente, err := c.store.Get(ctx, id)
	if err != nil {
		if apperrors.IsMissing(err) {
			c.templates.NotFound(w, r, "Cliente no encontrado", "/clientes", c.logger)
			return
		}
		log.Error("loading customer failed", zap.Int64("clienteId", id), zap.Error(err))
		c.renderPedidos(w, r, http.StatusBadGateway, pedidosPage{Error: "Error al cargar datos", Label: display.Placeholder})
		return
	}

	var (
		clientes []domain.Cliente
		pedidos  []domain.Pedido
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clientes, err = c.store.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pedidos, err = c.pedidos.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("loading customer orders failed", zap.Int64("clienteId", id), zap.Error(err))
		c.renderPedidos(w, r, http.StatusBadGateway, pedidosPage{
			Cliente: cliente,
			Label:   display.Placeholder,
			Error:   "Error al cargar datos",
		})
		return
	}

	propios := enrich.PedidosDeCliente(pedidos, id)
	labels := display.IDs(display.EntityIDs(pedidos), "P")
	cards := make([]pedidoCard, 0, len(propios))
	for _, p := range propios {
		cards = append(cards, pedidoCard{
			ID:          p.ID,
			Label:       display.Lookup(labels, p.ID),
			Descripcion: p.Descripcion,
			Articulos:   len(p.Productos),
			Total:       p.Amount(),
			Lineas:      display.Lineas(p.Productos),
		})
	}

	c.renderPedidos(w, r, http.StatusOK, pedidosPage{
		Cliente: cliente,
		Label:   display.Of(clientes, id, ""),
		Pedidos: cards,
		Count:   len(cards),
		Total:   enrich.TotalPedidos(propios),
	})
}

func (c *Controller) renderList(w http.ResponseWriter, r *http.Request, status int, s *listview.State[domain.Cliente], draft Draft) {
	c.templates.Write(w, r, status, "pages/clientes.html", view.Page(r, "Clientes", listPage{
		State:    s,
		Draft:    draft,
		Messages: mensajes,
	}), c.logger)
}

func (c *Controller) renderPedidos(w http.ResponseWriter, r *http.Request, status int, page pedidosPage) {
	c.templates.Write(w, r, status, "pages/cliente_pedidos.html", view.Page(r, "Pedidos del cliente", page), c.logger)
}
