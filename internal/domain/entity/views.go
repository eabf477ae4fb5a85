package entity

// WorkerWithProfile vista compuesta: usuario trabajador junto con su perfil.
type WorkerWithProfile struct {
	User    User
	Profile WorkerProfile
}

// ConnectionWithWorker vista compuesta: conexión anotada con el trabajador y su perfil.
type ConnectionWithWorker struct {
	Connection Connection
	Worker     User
	Profile    WorkerProfile
}
