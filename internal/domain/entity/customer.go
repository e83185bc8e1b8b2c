package entity

// Customer es el cliente registrado en una recepción. Un cliente nuevo se crea
// en cada recepción (no se buscan coincidencias con clientes anteriores).
type Customer struct {
	ID     int64
	Name   string
	Phone1 string
	Phone2 *string
}
