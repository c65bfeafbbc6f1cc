package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Backend is an in-memory stand-in for the customer/order and
// supplier/invoice APIs. Ids are assigned by the backend, like the real ones.
type Backend struct {
	Server *httptest.Server

	mu       sync.Mutex
	nextID   map[string]int64
	data     map[string]map[int64]map[string]any
	failures map[string]int
	requests []string
}

// NewBackend starts a fake backend; its base URL is Backend.BaseURL().
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		nextID:   make(map[string]int64),
		data:     make(map[string]map[int64]map[string]any),
		failures: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Route("/api/{resource}", func(r chi.Router) {
		r.Get("/", b.list)
		r.Post("/", b.create)
		r.Get("/{id}", b.get)
		r.Delete("/{id}", b.remove)
	})

	b.Server = httptest.NewServer(b.intercept(r))
	t.Cleanup(b.Server.Close)
	return b
}

func (b *Backend) BaseURL() string {
	return b.Server.URL + "/api"
}

// Seed stores obj under the given id.
func (b *Backend) Seed(resource string, id int64, obj map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data[resource] == nil {
		b.data[resource] = make(map[int64]map[string]any)
	}
	obj["id"] = id
	b.data[resource][id] = obj
	if id >= b.nextID[resource] {
		b.nextID[resource] = id
	}
}

// Fail makes every request matching "METHOD /api/path" answer status.
func (b *Backend) Fail(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = status
}

// Count returns how many objects resource holds.
func (b *Backend) Count(resource string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data[resource])
}

// Requests lists "METHOD /path" of every request received.
func (b *Backend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.requests))
	copy(out, b.requests)
	return out
}

func (b *Backend) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.requests = append(b.requests, key)
		status, fail := b.failures[key]
		b.mu.Unlock()

		if fail {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) list(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")

	b.mu.Lock()
	ids := make([]int64, 0, len(b.data[resource]))
	for id := range b.data[resource] {
		ids = append(ids, id)
	}
	// the real backends do not promise any order
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	items := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		items = append(items, b.data[resource][id])
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, items)
}

func (b *Backend) get(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	obj, ok := b.data[resource][id]
	b.mu.Unlock()

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, obj)
}

func (b *Backend) create(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")

	var obj map[string]any
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.nextID[resource]++
	id := b.nextID[resource]
	if b.data[resource] == nil {
		b.data[resource] = make(map[int64]map[string]any)
	}
	obj["id"] = id
	switch resource {
	case "pedidos":
		obj["descripcion"] = fmt.Sprintf("PEDIDO-%04d", id)
		obj["total"] = sumField(obj["productos"], "precio", "cantidad")
	case "facturas":
		obj["numero"] = fmt.Sprintf("FAC-%04d", id)
		obj["totalFactura"] = sumField(obj["pedidos"], "total", "")
	}
	b.data[resource][id] = obj
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, obj)
}

func (b *Backend) remove(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	_, ok := b.data[resource][id]
	delete(b.data[resource], id)
	b.mu.Unlock()

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func sumField(lines any, amountKey, qtyKey string) float64 {
	items, _ := lines.([]any)
	total := 0.0
	for _, raw := range items {
		line, _ := raw.(map[string]any)
		amount, _ := line[amountKey].(float64)
		qty := 1.0
		if qtyKey != "" {
			if q, ok := line[qtyKey].(float64); ok && q > 0 {
				qty = q
			}
		}
		total += amount * qty
	}
	return total
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
