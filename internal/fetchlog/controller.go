package fetchlog

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"multiservicios/internal/infrastructure/logger"
	"multiservicios/internal/view"
)

const recentLimit = 50

type Reader interface {
	Enabled() bool
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

type Controller struct {
	reader    Reader
	templates *view.Engine
	logger    *zap.Logger
}

func NewController(reader Reader, templates *view.Engine, logger *zap.Logger) *Controller {
	return &Controller{reader: reader, templates: templates, logger: logger}
}

type registroPage struct {
	Enabled bool
	Entries []Entry
	Error   string
}

// List shows the latest backend exchanges, newest first.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	page := registroPage{Enabled: c.reader.Enabled()}
	status := http.StatusOK

	if page.Enabled {
		entries, err := c.reader.Recent(r.Context(), recentLimit)
		if err != nil {
			logger.FromContext(r.Context(), c.logger).Error("loading fetch log failed", zap.Error(err))
			page.Error = "Error al cargar el registro"
			status = http.StatusInternalServerError
		}
		page.Entries = entries
	}

	c.templates.Write(w, r, status, "pages/registro.html", view.Page(r, "Registro de llamadas", page), c.logger)
}
