package entity

import "github.com/shopspring/decimal"

// Order es una orden de servicio; nace en estatus Recibido durante la recepción.
// Fecha y hora de ingreso se capturan en la zona horaria operativa del taller.
type Order struct {
	ID            int64
	VehicleID     int64
	IntakeDate    string // YYYY-MM-DD
	IntakeTime    string // HH:MM:SS
	ReportedIssue string
	Status        Status
	Charge        *decimal.Decimal // cobro, solo admin lo asigna
	Mechanic      *string
}

// OrderSummary es la fila desnormalizada de los listados (hoy / historial / detalle):
// orden + vehículo + cliente en una sola vista.
type OrderSummary struct {
	OrderID       int64
	IntakeDate    string // YYYY-MM-DD
	IntakeTime    string // HH:MM
	CustomerName  string
	Phone1        string
	Phone2        *string
	Make          string
	Model         string
	Year          *int
	Color         *string
	VIN           *string
	ReportedIssue string
	Charge        *decimal.Decimal
	Mechanic      *string
	StatusCode    int
}
