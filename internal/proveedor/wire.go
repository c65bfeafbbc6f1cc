package proveedor

import (
	"go.uber.org/zap"

	"multiservicios/internal/backend"
	"multiservicios/internal/view"
)

func NewModule(clients *backend.Clients, templates *view.Engine, logger *zap.Logger) *Controller {
	return NewController(clients.Proveedores, clients.Facturas, templates, logger)
}
