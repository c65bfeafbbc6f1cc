package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"multiservicios/internal/display"
	"multiservicios/internal/infrastructure/logger"
	"multiservicios/internal/view"
)

type SummaryService interface {
	Summary(ctx context.Context) (Summary, error)
}

type Controller struct {
	service   SummaryService
	templates *view.Engine
	logger    *zap.Logger
}

func NewController(service SummaryService, templates *view.Engine, logger *zap.Logger) *Controller {
	return &Controller{service: service, templates: templates, logger: logger}
}

type card struct {
	Titulo string
	Valor  string
	Icono  string
	Href   string
	Monto  string
}

type homePage struct {
	Cards      []card
	SinCliente int
	Error      string
}

func (c *Controller) Home(w http.ResponseWriter, r *http.Request) {
	page := homePage{}
	status := http.StatusOK

	summary, err := c.service.Summary(r.Context())
	if err != nil {
		logger.FromContext(r.Context(), c.logger).Error("loading dashboard summary failed", zap.Error(err))
		page.Error = "Error al cargar datos"
		page.Cards = cards(nil)
		status = http.StatusBadGateway
	} else {
		page.Cards = cards(&summary)
		page.SinCliente = summary.SinCliente
	}

	c.templates.Write(w, r, status, "pages/inicio.html", view.Page(r, "", page), c.logger)
}

// cards shows the placeholder for every value when s is nil.
func cards(s *Summary) []card {
	count := func(n int) string {
		if s == nil {
			return display.Placeholder
		}
		return strconv.Itoa(n)
	}
	money := func(v float64) string {
		if s == nil {
			return ""
		}
		return display.Quetzales(v)
	}
	var v Summary
	if s != nil {
		v = *s
	}
	return []card{
		{Titulo: "Total Clientes", Valor: count(v.Clientes), Icono: "👥", Href: "/clientes"},
		{Titulo: "Total Pedidos", Valor: count(v.Pedidos), Icono: "📦", Href: "/pedidos", Monto: money(v.TotalPedidos)},
		{Titulo: "Total Proveedores", Valor: count(v.Proveedores), Icono: "🏢", Href: "/proveedores"},
		{Titulo: "Total Facturas", Valor: count(v.Facturas), Icono: "📄", Href: "/facturas", Monto: money(v.TotalFacturas)},
	}
}
