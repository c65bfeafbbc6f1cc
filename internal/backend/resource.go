package backend

import (
	"context"
	"fmt"
	"net/http"

	apperrors "multiservicios/internal/errors"
)

// Doer is the part of Fetcher used by resources.
type Doer interface {
	Fetch(ctx context.Context, req Request, out any) (Response, error)
}

// Resource is a REST collection of T under baseURL + path.
type Resource[T any] struct {
	doer    Doer
	baseURL string
	path    string
}

func NewResource[T any](doer Doer, baseURL, path string) *Resource[T] {
	return &Resource[T]{doer: doer, baseURL: baseURL, path: path}
}

func (r *Resource[T]) collectionURL() string {
	return r.baseURL + r.path
}

func (r *Resource[T]) itemURL(id int64) string {
	return fmt.Sprintf("%s%s/%d", r.baseURL, r.path, id)
}

// List returns the whole collection in the order the backend sent it.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if _, err := r.doer.Fetch(ctx, Request{Method: http.MethodGet, URL: r.collectionURL()}, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var item T
	resp, err := r.doer.Fetch(ctx, Request{Method: http.MethodGet, URL: r.itemURL(id)}, &item)
	if err != nil {
		return item, err
	}
	if resp.Empty {
		return item, apperrors.NewNotFoundError(fmt.Sprintf("%s/%d not found", r.path, id))
	}
	return item, nil
}

// Create posts draft and returns the entity as stored by the backend.
func (r *Resource[T]) Create(ctx context.Context, draft any) (T, error) {
	var item T
	resp, err := r.doer.Fetch(ctx, Request{Method: http.MethodPost, URL: r.collectionURL(), Body: draft}, &item)
	if err != nil {
		return item, err
	}
	if resp.Empty {
		return item, apperrors.NewInternalError(fmt.Sprintf("POST %s returned no entity", r.path), nil)
	}
	return item, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.doer.Fetch(ctx, Request{Method: http.MethodDelete, URL: r.itemURL(id)}, nil)
	return err
}
