package dto

import "time"

// RegisterRequest entrada para registro. Los campos de perfil dependen del rol:
// worker usa skills/experience/location/availability, employer usa
// companyName/industry/jobNeeds/location. JSON en camelCase (contrato público del API).
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required,max=200"`
	LastName  string `json:"lastName" validate:"required,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=50"`
	Role      string `json:"role" validate:"required,oneof=worker employer"`

	// Perfil worker
	Skills       string `json:"skills"`
	Experience   string `json:"experience"`
	Location     string `json:"location"`
	Availability string `json:"availability"`

	// Perfil employer
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
	JobNeeds    string `json:"jobNeeds"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
