package listview

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"multiservicios/internal/domain"
	apperrors "multiservicios/internal/errors"
)

type mockCollection struct {
	ListFunc   func(ctx context.Context) ([]domain.Cliente, error)
	CreateFunc func(ctx context.Context, draft any) (domain.Cliente, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (m *mockCollection) List(ctx context.Context) ([]domain.Cliente, error) {
	return m.ListFunc(ctx)
}

func (m *mockCollection) Create(ctx context.Context, draft any) (domain.Cliente, error) {
	return m.CreateFunc(ctx, draft)
}

func (m *mockCollection) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type clienteDraft struct {
	Nombre string `validate:"required"`
	Correo string `validate:"required,email"`
}

func (d clienteDraft) Payload() any { return d }

var testMessages = Messages{
	Load:   "Error al cargar clientes",
	Create: "Error al crear cliente",
	Delete: "Error al eliminar cliente",
	Fields: map[string]string{"Nombre": "Ingrese el nombre"},
}

func seeded(ids ...int64) *mockCollection {
	return &mockCollection{
		ListFunc: func(ctx context.Context) ([]domain.Cliente, error) {
			out := make([]domain.Cliente, 0, len(ids))
			for _, id := range ids {
				out = append(out, domain.Cliente{ID: id, Nombre: "c"})
			}
			return out, nil
		},
	}
}

func TestMount_SortsAndLabels(t *testing.T) {
	view := New[domain.Cliente](seeded(30, 10, 20), "", testMessages, zap.NewNop())

	s := view.Mount(context.Background())

	require.Empty(t, s.Error)
	assert.Equal(t, []int64{10, 20, 30}, []int64{s.Items[0].ID, s.Items[1].ID, s.Items[2].ID})
	assert.Equal(t, "001", s.Label(10))
	assert.Equal(t, "003", s.Label(30))
	assert.Equal(t, "—", s.Label(99))
}

func TestMount_Failure(t *testing.T) {
	coll := &mockCollection{
		ListFunc: func(ctx context.Context) ([]domain.Cliente, error) {
			return nil, errors.New("down")
		},
	}

	s := New[domain.Cliente](coll, "", testMessages, zap.NewNop()).Mount(context.Background())

	assert.Equal(t, "Error al cargar clientes", s.Error)
	assert.True(t, s.Empty())
	assert.False(t, s.Loaded)
}

func TestSubmit_AppendsServerEntity(t *testing.T) {
	coll := seeded(1, 2)
	coll.CreateFunc = func(ctx context.Context, draft any) (domain.Cliente, error) {
		d := draft.(clienteDraft)
		return domain.Cliente{ID: 42, Nombre: d.Nombre, Correo: d.Correo}, nil
	}
	view := New[domain.Cliente](coll, "", testMessages, zap.NewNop())
	s := view.Mount(context.Background())
	s.FormOpen = true

	err := view.Submit(context.Background(), s, clienteDraft{Nombre: "Ana", Correo: "ana@x.com"})

	require.NoError(t, err)
	assert.Len(t, s.Items, 3)
	assert.Equal(t, int64(42), s.Items[2].ID)
	assert.Equal(t, "003", s.Label(42))
	assert.False(t, s.FormOpen)
	assert.Empty(t, s.Error)
}

func TestSubmit_ValidationKeepsFormOpen(t *testing.T) {
	coll := seeded(1)
	coll.CreateFunc = func(ctx context.Context, draft any) (domain.Cliente, error) {
		t.Fatal("create must not be called")
		return domain.Cliente{}, nil
	}
	view := New[domain.Cliente](coll, "", testMessages, zap.NewNop())
	s := view.Mount(context.Background())

	err := view.Submit(context.Background(), s, clienteDraft{Correo: "ana@x.com"})

	assert.Equal(t, http.StatusUnprocessableEntity, Status(err))
	assert.True(t, s.FormOpen)
	assert.Equal(t, "Ingrese el nombre", s.Error)
	assert.Len(t, s.Items, 1)
}

func TestSubmit_InvalidEmail(t *testing.T) {
	view := New[domain.Cliente](seeded(), "", testMessages, zap.NewNop())
	s := view.Mount(context.Background())

	err := view.Submit(context.Background(), s, clienteDraft{Nombre: "Ana", Correo: "no-es-correo"})

	assert.Error(t, err)
	assert.Equal(t, "Ingrese un correo válido", s.Error)
}

func TestSubmit_BackendFailure(t *testing.T) {
	coll := seeded(1)
	coll.CreateFunc = func(ctx context.Context, draft any) (domain.Cliente, error) {
		return domain.Cliente{}, errors.New("500")
	}
	view := New[domain.Cliente](coll, "", testMessages, zap.NewNop())
	s := view.Mount(context.Background())

	err := view.Submit(context.Background(), s, clienteDraft{Nombre: "Ana", Correo: "ana@x.com"})

	assert.Equal(t, http.StatusBadGateway, Status(err))
	assert.True(t, s.FormOpen)
	assert.Equal(t, "Error al crear cliente", s.Error)
	assert.Len(t, s.Items, 1)
}

func TestRemove_DropsExactID(t *testing.T) {
	coll := seeded(1, 2, 3)
	var deleted int64
	coll.DeleteFunc = func(ctx context.Context, id int64) error {
		deleted = id
		return nil
	}
	view := New[domain.Cliente](coll, "", testMessages, zap.NewNop())
	s := view.Mount(context.Background())

	err := view.Remove(context.Background(), s, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Equal(t, []int64{1, 3}, []int64{s.Items[0].ID, s.Items[1].ID})
	assert.Equal(t, "002", s.Label(3))
}

func TestRemove_FailureLeavesList(t *testing.T) {
	coll := seeded(1, 2)
	coll.DeleteFunc = func(ctx context.Context, id int64) error { return errors.New("404") }
	view := New[domain.Cliente](coll, "", testMessages, zap.NewNop())
	s := view.Mount(context.Background())

	err := view.Remove(context.Background(), s, 2)

	assert.Error(t, err)
	assert.Equal(t, "Error al eliminar cliente", s.Error)
	assert.Len(t, s.Items, 2)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, Status(nil))
	assert.Equal(t, http.StatusUnprocessableEntity, Status(apperrors.NewValidationError("x")))
	assert.Equal(t, http.StatusNotFound, Status(apperrors.NewNotFoundError("x")))
	assert.Equal(t, http.StatusBadGateway, Status(apperrors.NewStatusError("GET", "/x", 500)))
}
