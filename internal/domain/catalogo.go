package domain

import "fmt"

// ItemCatalogo is fixed reference data offered in the order form.
type ItemCatalogo struct {
	ID        int
	Nombre    string
	Modelo    string
	RAM       string
	Precio    float64
	Categoria string
}

var catalogo = []ItemCatalogo{
	{ID: 1, Nombre: "ASUS", Modelo: "VIVOBOOK E1504GA-WS36", RAM: "8GB RAM", Precio: 3599.00, Categoria: "Computadoras"},
	{ID: 2, Nombre: "VICTUS", Modelo: "15-FB3093DX RYZEN 7 7435HS", RAM: "16GB RAM", Precio: 8599.00, Categoria: "Computadoras"},
	{ID: 3, Nombre: "ASUS", Modelo: "TUF A17TNT-A16 RYZEN 7-7735HS", RAM: "16GB RAM", Precio: 9649.00, Categoria: "Computadoras"},
	{ID: 4, Nombre: "VICTUS", Modelo: "15-FA2701WM I5-13420H", RAM: "16GB RAM", Precio: 7899.00, Categoria: "Computadoras"},
	{ID: 5, Nombre: "VICTUS", Modelo: "15-FB2063DX RYZEN 5 7535HS", RAM: "8GB RAM", Precio: 5799.00, Categoria: "Computadoras"},
	{ID: 6, Nombre: "ACER", Modelo: "NITRO V15 ANV15-51-93PU I9-13900H", RAM: "16GB RAM", Precio: 9299.00, Categoria: "Computadoras"},
	{ID: 7, Nombre: "ASUS", Modelo: "VIVOBOOK F1605VA-AB74 I7-13650", RAM: "16GB RAM", Precio: 6849.00, Categoria: "Computadoras"},
	{ID: 8, Nombre: "ASUS", Modelo: "VIVOBOOK 14A4V I5-1334U", RAM: "12GB RAM", Precio: 4229.00, Categoria: "Computadoras"},
}

// Catalogo returns a copy of the catalog.
func Catalogo() []ItemCatalogo {
	out := make([]ItemCatalogo, len(catalogo))
	copy(out, catalogo)
	return out
}

func CatalogoPorID(id int) (ItemCatalogo, bool) {
	for _, item := range catalogo {
		if item.ID == id {
			return item, true
		}
	}
	return ItemCatalogo{}, false
}

func CatalogoPorCategoria(categoria string) []ItemCatalogo {
	var out []ItemCatalogo
	for _, item := range catalogo {
		if item.Categoria == categoria {
			out = append(out, item)
		}
	}
	return out
}

// Categorias lists categories in catalog order, without repeats.
func Categorias() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range catalogo {
		if _, ok := seen[item.Categoria]; ok {
			continue
		}
		seen[item.Categoria] = struct{}{}
		out = append(out, item.Categoria)
	}
	return out
}

// Linea turns a catalog item into an order line.
func (i ItemCatalogo) Linea(cantidad int) Producto {
	return Producto{
		Nombre:   fmt.Sprintf("%s %s", i.Nombre, i.Modelo),
		Precio:   i.Precio,
		Cantidad: cantidad,
	}
}
