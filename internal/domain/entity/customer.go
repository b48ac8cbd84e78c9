package entity

import "time"

// Customer representa un cliente de la tienda. Se busca por teléfono en el
// punto de venta y se crea al vuelo si no existe.
type Customer struct {
	ID        string
	FullName  string
	Phone     string
	Email     string
	GovtID    string
	Notes     string
	CreatedAt time.Time
}
