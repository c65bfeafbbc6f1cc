package domain

// Proveedor is a supplier as returned by backend B.
type Proveedor struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono,omitempty"`
	Contacto string `json:"contacto"`
}

func (p Proveedor) EntityID() int64 {
	return p.ID
}
