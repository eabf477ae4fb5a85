package dto

// WorkerProfileResponse perfil público de un trabajador.
type WorkerProfileResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Skills       string `json:"skills"`
	Experience   string `json:"experience"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
	Description  string `json:"description,omitempty"`
	HourlyRate   string `json:"hourlyRate,omitempty"`
}

// WorkerResponse usuario trabajador con su perfil embebido (salida de /api/workers).
type WorkerResponse struct {
	UserResponse
	WorkerProfile WorkerProfileResponse `json:"workerProfile"`
}
