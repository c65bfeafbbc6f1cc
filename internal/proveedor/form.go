package proveedor

import (
	"net/http"
	"strings"

	"multiservicios/internal/listview"
)

var mensajes = listview.Messages{
	Load:    "Error al cargar proveedores",
	Create:  "Error al crear proveedor",
	Delete:  "Error al eliminar proveedor",
	Empty:   "No hay proveedores registrados",
	Confirm: "¿Estás seguro de que deseas eliminar este proveedor?",
	Fields: map[string]string{
		"Nombre":   "Ingrese el nombre del proveedor",
		"Correo":   "Ingrese un correo válido",
		"Contacto": "Ingrese el contacto del proveedor",
	},
}

type Draft struct {
	Nombre   string
	Correo   string
	Telefono string
	Contacto string
}

type payload struct {
	Nombre   string `json:"nombre" validate:"required"`
	Correo   string `json:"correo" validate:"required,email"`
	Telefono string `json:"telefono,omitempty"`
	Contacto string `json:"contacto" validate:"required"`
}

func (d Draft) Payload() any {
	return payload{
		Nombre:   strings.TrimSpace(d.Nombre),
		Correo:   strings.TrimSpace(d.Correo),
		Telefono: strings.TrimSpace(d.Telefono),
		Contacto: strings.TrimSpace(d.Contacto),
	}
}

func parseDraft(r *http.Request) Draft {
	return Draft{
		Nombre:   r.PostFormValue("nombre"),
		Correo:   r.PostFormValue("correo"),
		Telefono: r.PostFormValue("telefono"),
		Contacto: r.PostFormValue("contacto"),
	}
}
