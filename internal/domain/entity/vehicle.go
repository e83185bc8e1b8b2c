package entity

// Vehicle pertenece a exactamente un cliente. El VIN puede corregirse después
// de la recepción (se captura al revisar la unidad).
type Vehicle struct {
	ID         int64
	CustomerID int64
	Make       string
	Model      string
	Year       *int
	Color      *string
	VIN        *string
}
