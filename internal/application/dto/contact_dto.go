package dto

// CreateContactRequest entrada del formulario de contacto.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// ContactResponse confirmación de recepción del mensaje.
type ContactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
