package cliente

import (
	"net/http"
	"strings"

	"multiservicios/internal/listview"
)

var mensajes = listview.Messages{
	Load:    "Error al cargar clientes",
	Create:  "Error al crear cliente",
	Delete:  "Error al eliminar cliente",
	Empty:   "No hay clientes registrados",
	Confirm: "¿Estás seguro de que deseas eliminar este cliente?",
	Fields: map[string]string{
		"Nombre": "Ingrese el nombre del cliente",
		"Correo": "Ingrese un correo válido",
	},
}

// Draft is the customer form as typed by the user.
type Draft struct {
	Nombre string
	Correo string
}

type payload struct {
	Nombre string `json:"nombre" validate:"required"`
	Correo string `json:"correo" validate:"required,email"`
}

func (d Draft) Payload() any {
	return payload{
		Nombre: strings.TrimSpace(d.Nombre),
		Correo: strings.TrimSpace(d.Correo),
	}
}

func parseDraft(r *http.Request) Draft {
	return Draft{
		Nombre: r.PostFormValue("nombre"),
		Correo: r.PostFormValue("correo"),
	}
}
