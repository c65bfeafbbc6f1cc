package server

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"multiservicios/internal/cliente"
	"multiservicios/internal/dashboard"
	"multiservicios/internal/factura"
	"multiservicios/internal/fetchlog"
	"multiservicios/internal/infrastructure/logger"
	"multiservicios/internal/infrastructure/metrics"
	"multiservicios/internal/pedido"
	"multiservicios/internal/proveedor"
	"multiservicios/internal/view"
	"multiservicios/web"
)

const requestIDHeader = "X-Request-ID"

type Controllers struct {
	Dashboard   *dashboard.Controller
	Clientes    *cliente.Controller
	Pedidos     *pedido.Controller
	Proveedores *proveedor.Controller
	Facturas    *factura.Controller
	Registro    *fetchlog.Controller
}

type RouterOptions struct {
	RateLimitPerMinute int
	Templates          *view.Engine
	Metrics            *metrics.Metrics
	Logger             *zap.Logger
}

func NewRouter(ctrls Controllers, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(traceRequests(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(opts.Metrics.Middleware)
	r.Use(secureHeaders().Handler)
	if opts.RateLimitPerMinute > 0 {
		r.Use(httprate.Limit(opts.RateLimitPerMinute, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
	}
	r.Use(http.NewCrossOriginProtection().Handler)

	r.Get("/healthz", health)
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	r.Get("/", ctrls.Dashboard.Home)

	r.Route("/clientes", func(r chi.Router) {
		r.Get("/", ctrls.Clientes.List)
		r.Post("/", ctrls.Clientes.Create)
		r.Get("/{id}/pedidos", ctrls.Clientes.Pedidos)
		r.Get("/{id}/eliminar", ctrls.Clientes.ConfirmDelete)
		r.Post("/{id}/eliminar", ctrls.Clientes.Delete)
	})

	r.Route("/pedidos", func(r chi.Router) {
		r.Get("/", ctrls.Pedidos.List)
		r.Post("/", ctrls.Pedidos.Create)
		r.Get("/{id}", ctrls.Pedidos.Detail)
		r.Get("/{id}/eliminar", ctrls.Pedidos.ConfirmDelete)
		r.Post("/{id}/eliminar", ctrls.Pedidos.Delete)
	})

	r.Route("/proveedores", func(r chi.Router) {
		r.Get("/", ctrls.Proveedores.List)
		r.Post("/", ctrls.Proveedores.Create)
		r.Get("/{id}/facturas", ctrls.Proveedores.Facturas)
		r.Get("/{id}/eliminar", ctrls.Proveedores.ConfirmDelete)
		r.Post("/{id}/eliminar", ctrls.Proveedores.Delete)
	})

	r.Route("/facturas", func(r chi.Router) {
		r.Get("/", ctrls.Facturas.List)
		r.Post("/", ctrls.Facturas.Create)
		r.Get("/{id}", ctrls.Facturas.Detail)
		r.Get("/{id}/eliminar", ctrls.Facturas.ConfirmDelete)
		r.Post("/{id}/eliminar", ctrls.Facturas.Delete)
	})

	r.Get("/registro", ctrls.Registro.List)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		opts.Templates.NotFound(w, r, "La página solicitada no existe", "/", opts.Logger)
	})

	return r
}

// traceRequests assigns each page request a trace id, reusing an inbound
// X-Request-ID, and logs the request once it completes.
func traceRequests(base *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(requestIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, traceID)

			reqLogger := base.With(zap.String("traceId", traceID))
			ctx := logger.WithTraceID(r.Context(), traceID)
			ctx = logger.WithContext(ctx, reqLogger)

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func secureHeaders() *secure.Secure {
	return secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
	})
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
