package dashboard

import (
	"go.uber.org/zap"

	"multiservicios/internal/backend"
	"multiservicios/internal/view"
)

func NewModule(clients *backend.Clients, templates *view.Engine, logger *zap.Logger) *Controller {
	svc := NewService(clients.Clientes, clients.Pedidos, clients.Proveedores, clients.Facturas)
	return NewController(svc, templates, logger)
}
