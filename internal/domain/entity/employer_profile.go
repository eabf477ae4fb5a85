package entity

// EmployerProfile perfil de un User con rol employer (uno a uno).
type EmployerProfile struct {
	ID          string
	UserID      string
	CompanyName string
	Industry    string
	JobNeeds    string // opcional
	Location    string // opcional
}
