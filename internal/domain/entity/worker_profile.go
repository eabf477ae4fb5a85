package entity

// Disponibilidad por defecto de un perfil de trabajador recién creado.
const DefaultAvailability = "Available Now"

// WorkerProfile perfil público de un User con rol worker (uno a uno).
type WorkerProfile struct {
	ID           string
	UserID       string
	Skills       string
	Experience   string
	Location     string
	Availability string // "Available Now", "This Week", "This Month", ...
	Description  string // opcional
	HourlyRate   string // opcional, texto libre
}
