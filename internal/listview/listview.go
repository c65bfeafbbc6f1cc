// Package listview is the list + inline create form + delete flow shared by
// every entity page. A State lives for one request only.
package listview

import (
	"context"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"multiservicios/internal/display"
	apperrors "multiservicios/internal/errors"
	"multiservicios/internal/infrastructure/logger"
)

// Collection is the remote collection behind a page.
type Collection[T display.Identifiable] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft any) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Draft is what the form holds. Payload is the body sent on create and
// carries the validate tags.
type Draft interface {
	Payload() any
}

// Messages are the texts shown by one entity page.
type Messages struct {
	Load    string
	Create  string
	Delete  string
	Empty   string
	Confirm string
	// Fields overrides the validation message of a payload field.
	Fields map[string]string
}

type State[T display.Identifiable] struct {
	Items    []T
	Labels   map[int64]string
	Error    string
	FormOpen bool
	Loaded   bool
}

// Label is the display id of the item with raw id.
func (s *State[T]) Label(id int64) string {
	return display.Lookup(s.Labels, id)
}

func (s *State[T]) Empty() bool {
	return len(s.Items) == 0
}

type View[T display.Identifiable] struct {
	collection Collection[T]
	prefix     string
	messages   Messages
	validate   *validator.Validate
	logger     *zap.Logger
}

func New[T display.Identifiable](collection Collection[T], prefix string, messages Messages, logger *zap.Logger) *View[T] {
	return &View[T]{
		collection: collection,
		prefix:     prefix,
		messages:   messages,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (v *View[T]) Messages() Messages {
	return v.messages
}

// Mount loads the collection sorted ascending by raw id.
func (v *View[T]) Mount(ctx context.Context) *State[T] {
	s := &State[T]{}
	items, err := v.collection.List(ctx)
	if err != nil {
		logger.FromContext(ctx, v.logger).Error("loading collection failed", zap.Error(err))
		s.Error = v.messages.Load
		s.Items = []T{}
		s.relabel(v.prefix)
		return s
	}
	s.Items = items
	s.Loaded = true
	s.relabel(v.prefix)
	return s
}

// Submit validates draft and creates it. On success the server's entity is
// appended and the form closes; otherwise the form stays open and the
// error is returned.
func (v *View[T]) Submit(ctx context.Context, s *State[T], draft Draft) error {
	payload := draft.Payload()
	if err := v.Validate(payload); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		s.Error = ve.Message
		s.FormOpen = true
		return err
	}

	created, err := v.collection.Create(ctx, payload)
	if err != nil {
		logger.FromContext(ctx, v.logger).Error("creating entity failed", zap.Error(err))
		s.Error = v.messages.Create
		s.FormOpen = true
		return err
	}

	s.Items = append(s.Items, created)
	s.relabel(v.prefix)
	s.FormOpen = false
	return nil
}

// Remove deletes id and drops exactly that item from the list. On failure
// the list is left as it was.
func (v *View[T]) Remove(ctx context.Context, s *State[T], id int64) error {
	if err := v.collection.Delete(ctx, id); err != nil {
		logger.FromContext(ctx, v.logger).Error("deleting entity failed", zap.Int64("id", id), zap.Error(err))
		s.Error = v.messages.Delete
		return err
	}

	kept := s.Items[:0:0]
	for _, item := range s.Items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	s.Items = kept
	s.relabel(v.prefix)
	return nil
}

// Validate checks payload against its validate tags and returns a
// ValidationError whose Message is the first field's Spanish text.
func (v *View[T]) Validate(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError(MensajeGenerico)
	}

	details := make([]apperrors.ValidationDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, apperrors.ValidationDetail{
			Field:   fe.Field(),
			Message: v.fieldMessage(fe),
		})
	}
	return apperrors.NewValidationError(details[0].Message, details...)
}

// Status is the HTTP status of a page rendered after Submit or Remove.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if _, ok := apperrors.IsValidationError(err); ok {
		return http.StatusUnprocessableEntity
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// MensajeGenerico is used when no better text exists for a field.
const MensajeGenerico = "Complete los campos requeridos"

func (v *View[T]) fieldMessage(fe validator.FieldError) string {
	if msg, ok := v.messages.Fields[fe.Field()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "email":
		return "Ingrese un correo válido"
	case "required":
		return "El campo " + fe.Field() + " es obligatorio"
	}
	return MensajeGenerico
}

func (s *State[T]) relabel(prefix string) {
	sort.SliceStable(s.Items, func(i, j int) bool {
		return s.Items[i].EntityID() < s.Items[j].EntityID()
	})
	s.Labels = display.IDs(display.EntityIDs(s.Items), prefix)
}
