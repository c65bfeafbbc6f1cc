package fetchlog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"multiservicios/internal/view"
)

func serveRegistro(t *testing.T, svc *Service) *httptest.ResponseRecorder {
	t.Helper()
	templates, err := view.NewEngine()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewController(svc, templates, zap.NewNop()).List(rec, httptest.NewRequest(http.MethodGet, "/registro", nil))
	return rec
}

func TestList_Disabled(t *testing.T) {
	rec := serveRegistro(t, NewService(nil, zap.NewNop()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "El registro de llamadas está desactivado.")
}

func TestList_ShowsRecentEntries(t *testing.T) {
	var gotLimit int
	repo := &mockRepository{
		FindRecentFunc: func(ctx context.Context, limit int) ([]Entry, error) {
			gotLimit = limit
			return []Entry{
				{ID: 2, TraceID: "trace-b", Method: "POST", URL: "http://a/api/pedidos", Status: 400, Error: "API Error: 400", CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
				{ID: 1, TraceID: "trace-a", Method: "GET", URL: "http://a/api/clientes", Status: 200, CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
			}, nil
		},
	}

	rec := serveRegistro(t, NewService(repo, zap.NewNop()))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, recentLimit, gotLimit)
	assert.Contains(t, body, "trace-b")
	assert.Contains(t, body, "http://a/api/clientes")
	assert.Contains(t, body, "2024-05-01 10:00:00")
	assert.Less(t, strings.Index(body, "trace-b"), strings.Index(body, "trace-a"))
}

func TestList_RepositoryFailure(t *testing.T) {
	repo := &mockRepository{
		FindRecentFunc: func(ctx context.Context, limit int) ([]Entry, error) {
			return nil, errors.New("db gone")
		},
	}

	rec := serveRegistro(t, NewService(repo, zap.NewNop()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error al cargar el registro")
}
