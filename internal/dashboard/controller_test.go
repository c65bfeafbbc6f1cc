package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"multiservicios/internal/view"
)

type mockSummaryService struct {
	SummaryFunc func(ctx context.Context) (Summary, error)
}

func (m *mockSummaryService) Summary(ctx context.Context) (Summary, error) {
	return m.SummaryFunc(ctx)
}

func newTestController(t *testing.T, svc SummaryService) *Controller {
	t.Helper()
	templates, err := view.NewEngine()
	require.NoError(t, err)
	return NewController(svc, templates, zap.NewNop())
}

func TestHome(t *testing.T) {
	ctrl := newTestController(t, &mockSummaryService{
		SummaryFunc: func(ctx context.Context) (Summary, error) {
			return Summary{Clientes: 12, Pedidos: 30, Proveedores: 4, Facturas: 9, TotalPedidos: 45210.5}, nil
		},
	})

	rec := httptest.NewRecorder()
	ctrl.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, ">12<")
	assert.Contains(t, body, ">30<")
	assert.Contains(t, body, "Q.45,210.50")
	assert.NotContains(t, body, "Error al cargar datos")
}

func TestHome_FailureShowsPlaceholders(t *testing.T) {
	ctrl := newTestController(t, &mockSummaryService{
		SummaryFunc: func(ctx context.Context) (Summary, error) {
			return Summary{}, errors.New("down")
		},
	})

	rec := httptest.NewRecorder()
	ctrl.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Error al cargar datos")
	assert.Equal(t, 4, strings.Count(body, `<p class="value">—</p>`))
}
