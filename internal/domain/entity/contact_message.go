package entity

import "time"

// ContactMessage envío del formulario de contacto. Sin relación con User.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
