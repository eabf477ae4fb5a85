package entity

import "time"

// Roles válidos para User.
const (
	RoleWorker   = "worker"
	RoleEmployer = "employer"
)

// User representa una cuenta de la plataforma (trabajador o empleador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         string // worker, employer
	Phone        string // opcional
	CreatedAt    time.Time
}

// FullName devuelve el nombre para mostrar en el chat y los listados.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
