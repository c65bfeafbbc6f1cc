package domain

// Cliente is a customer as returned by backend A.
type Cliente struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
}

func (c Cliente) EntityID() int64 {
	return c.ID
}
